// Package shuffle models the space card shuffle techniques, both as
// permutations of an explicit deck and as linear congruential maps on card
// positions.
package shuffle

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is a shuffle technique.
type Kind int

const (
	DealIntoNewStack Kind = iota
	Cut
	DealWithIncrement
)

func (k Kind) String() string {
	switch k {
	case DealIntoNewStack:
		return "DealIntoNewStack"
	case Cut:
		return "Cut"
	case DealWithIncrement:
		return "DealWithIncrement"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Technique is one step of a shuffle process. N is the cut size or the
// increment; it is unused for DealIntoNewStack.
type Technique struct {
	Kind Kind
	N    int64
}

const (
	newStackLine    = "deal into new stack"
	cutPrefix       = "cut "
	incrementPrefix = "deal with increment "
)

// String returns t as it is written in the puzzle input.
func (t Technique) String() string {
	switch t.Kind {
	case DealIntoNewStack:
		return newStackLine
	case Cut:
		return cutPrefix + strconv.FormatInt(t.N, 10)
	case DealWithIncrement:
		return incrementPrefix + strconv.FormatInt(t.N, 10)
	}
	return fmt.Sprintf("%v %d", t.Kind, t.N)
}

// ParseTechnique parses a single line of puzzle input.
func ParseTechnique(line string) (Technique, error) {
	line = strings.TrimSpace(line)
	if line == newStackLine {
		return Technique{Kind: DealIntoNewStack}, nil
	}
	if v, ok := strings.CutPrefix(line, cutPrefix); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Technique{}, fmt.Errorf("parsing %q: %w", line, err)
		}
		return Technique{Kind: Cut, N: n}, nil
	}
	if v, ok := strings.CutPrefix(line, incrementPrefix); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Technique{}, fmt.Errorf("parsing %q: %w", line, err)
		}
		if n <= 0 {
			return Technique{}, fmt.Errorf("parsing %q: increment must be positive", line)
		}
		return Technique{Kind: DealWithIncrement, N: n}, nil
	}
	return Technique{}, fmt.Errorf("unknown technique %q", line)
}

// Process is a sequence of techniques applied in order.
type Process []Technique

// ParseProcess parses one technique per line. Blank lines are skipped.
func ParseProcess(input string) (Process, error) {
	var p Process
	for i, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := ParseTechnique(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		p = append(p, t)
	}
	return p, nil
}

func (p Process) String() string {
	lines := make([]string, len(p))
	for i, t := range p {
		lines[i] = t.String()
	}
	return strings.Join(lines, "\n")
}

// Apply runs every technique of p on d in order.
func (p Process) Apply(d Deck) (Deck, error) {
	for _, t := range p {
		var err error
		if d, err = d.Apply(t); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// LCG returns the map from a card's position before p to its position
// after p, for a deck of c cards.
func (p Process) LCG(c uint64) (LCG, error) {
	if c == 0 || c > maxModulus {
		return LCG{}, fmt.Errorf("deck size %d out of range", c)
	}
	f := Identity(c)
	for _, t := range p {
		g, err := Of(t, c)
		if err != nil {
			return LCG{}, err
		}
		f = f.Then(g)
	}
	return f, nil
}
