// Command day22 solves Advent of Code 2019 day 22, "Slam Shuffle".
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"

	"github.com/maisem/slamshuffle/aoc"
	"github.com/maisem/slamshuffle/shuffle"
	"github.com/schollz/progressbar/v3"
)

func main() {
	aoc.Run(2019, source, &solver{})
}

//go:embed day22.go
var source []byte

var (
	flagVerify uint64
	flagPeriod bool
)

func init() {
	flag.Uint64Var(&flagVerify, "verify", 0, "step the part 1 recurrence this many times and check it against the closed form")
	flag.BoolVar(&flagPeriod, "period", false, "report how many shuffles restore the part 1 deck")
}

const (
	deckSize  = 10007
	card      = 2019
	bigDeck   = 119315717514047
	shuffles  = 101741582076661
	targetPos = 2020

	sampleDeck = 10
	samplePos  = 3
)

type solver struct {
	*aoc.Puzzle
}

func (s solver) process() shuffle.Process {
	var p shuffle.Process
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		p = append(p, aoc.MustGet(shuffle.ParseTechnique(line)))
	})
	return p
}

/*
want=9 2 5 8 1 4 7 0 3 6

deal into new stack
cut -2
deal with increment 7
cut 8
cut -4
deal with increment 7
cut 3
deal with increment 9
deal with increment 3
cut -1
*/
func (s solver) D22p1() any {
	p := s.process()
	size := deckSize
	if s.SampleMode {
		size = sampleDeck
	}
	deck := aoc.MustGet(p.Apply(shuffle.NewDeck(size)))
	f := aoc.MustGet(p.LCG(uint64(size)))
	s.Debug("shuffle:", f)
	s.Debugf("deck: %v", deck)

	if flagPeriod {
		fmt.Println("period:", aoc.MustGet(period(p, f, size, s.SampleMode)))
	}
	if s.SampleMode {
		return deck
	}

	pos := deck.Position(card)
	if got := f.Apply(card); got != uint64(pos) {
		log.Fatalf("deck puts %d at %d; recurrence puts it at %d", card, pos, got)
	}
	if flagVerify > 0 {
		aoc.MustDo(verify(f, card, flagVerify))
	}
	return pos
}

// want=8
func (s solver) D22p2() any {
	size, pos := uint64(bigDeck), uint64(targetPos)
	if s.SampleMode {
		size, pos = sampleDeck, samplePos
	}
	f := aoc.MustGet(s.process().LCG(size)).Pow(shuffles)
	s.Debug("after", shuffles, "shuffles:", f)
	return aoc.MustGet(f.Inverse()).Apply(pos)
}

// period returns how many shuffles restore a deck of size cards. Small
// sample decks are shuffled for real; otherwise the recurrence f is used.
func period(p shuffle.Process, f shuffle.LCG, size int, sample bool) (uint64, error) {
	if sample {
		n, err := shuffle.Period(p, size, size*size)
		return uint64(n), err
	}
	n, ok := f.Order(uint64(size))
	if !ok {
		return 0, fmt.Errorf("no period within %d shuffles", size)
	}
	return n, nil
}

// verify steps f from x n times and compares the result with the closed form.
func verify(f shuffle.LCG, x, n uint64) error {
	bar := progressbar.Default(int64(n), "verifying")
	got := x
	for i := uint64(1); i <= n; i++ {
		got = f.Apply(got)
		if i%(1<<16) == 0 {
			_ = bar.Set64(int64(i))
		}
	}
	_ = bar.Finish()
	if want := f.Pow(n).Apply(x); got != want {
		return fmt.Errorf("after %d steps: iterated %d, closed form %d", n, got, want)
	}
	fmt.Printf("verified %d steps: %d\n", n, got)
	return nil
}
