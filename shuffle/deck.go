package shuffle

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/slamshuffle/aoc"
	"tailscale.com/util/deephash"
)

// Deck is an explicit deck of cards, top card first.
type Deck []uint64

// NewDeck returns a deck of n cards in factory order.
func NewDeck(n int) Deck {
	d := make(Deck, n)
	for i := range d {
		d[i] = uint64(i)
	}
	return d
}

// DealIntoNewStack returns d in reverse order.
func (d Deck) DealIntoNewStack() Deck {
	var s aoc.Stack[uint64]
	for _, c := range d {
		s.Push(c)
	}
	out := make(Deck, 0, len(d))
	s.While(func(c uint64) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Cut moves the top n cards to the bottom. A negative n moves the bottom
// |n| cards to the top.
func (d Deck) Cut(n int64) Deck {
	if len(d) == 0 {
		return Deck{}
	}
	q := aoc.NewQueue[uint64](slices.Clone(d)...)
	for k := aoc.Mod(n, int64(len(d))); k > 0; k-- {
		c, _ := q.Pop()
		q.Push(c)
	}
	out := make(Deck, 0, len(d))
	q.While(func(c uint64) bool {
		out = append(out, c)
		return true
	})
	return out
}

// DealWithIncrement deals d onto a table of len(d) slots, moving n slots
// after each card. n must be coprime with len(d) or cards would collide.
func (d Deck) DealWithIncrement(n int64) (Deck, error) {
	if len(d) == 0 {
		return Deck{}, nil
	}
	size := uint64(len(d))
	if err := checkIncrement(n, size); err != nil {
		return nil, err
	}
	out := make(Deck, len(d))
	for i, c := range d {
		out[aoc.MulMod(uint64(i), uint64(n), size)] = c
	}
	return out, nil
}

// Apply returns d shuffled with t.
func (d Deck) Apply(t Technique) (Deck, error) {
	switch t.Kind {
	case DealIntoNewStack:
		return d.DealIntoNewStack(), nil
	case Cut:
		return d.Cut(t.N), nil
	case DealWithIncrement:
		return d.DealWithIncrement(t.N)
	}
	return nil, fmt.Errorf("unknown technique %v", t.Kind)
}

// Position returns the index of card in d, or -1.
func (d Deck) Position(card uint64) int {
	return slices.Index(d, card)
}

func (d Deck) String() string {
	var sb strings.Builder
	for i, c := range d {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(c, 10))
	}
	return sb.String()
}

var hashDeck = deephash.HasherForType[Deck]()

// Hash returns a hash of the order of d.
func (d Deck) Hash() deephash.Sum {
	return hashDeck(&d)
}

// ErrNoPeriod is returned by Period when the deck does not return to
// factory order within the limit.
var ErrNoPeriod = errors.New("no period within limit")

// Period returns the number of times p must be applied to a factory deck
// of size cards before the deck is back in factory order.
func Period(p Process, size, limit int) (int, error) {
	d := NewDeck(size)
	start := d.Hash()
	for i := 1; i <= limit; i++ {
		var err error
		if d, err = p.Apply(d); err != nil {
			return 0, err
		}
		if d.Hash() == start {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d shuffles of %d cards", ErrNoPeriod, limit, size)
}

func checkIncrement(n int64, size uint64) error {
	if n <= 0 {
		return fmt.Errorf("increment %d is not positive", n)
	}
	if g := aoc.GCD(uint64(n), size); g != 1 {
		return fmt.Errorf("increment %d shares factor %d with deck size %d", n, g, size)
	}
	return nil
}
