package shuffle

import (
	"fmt"
	"math"

	"github.com/maisem/slamshuffle/aoc"
)

// maxModulus bounds C so residues fit in an int64 for ModInverse.
const maxModulus = math.MaxInt64

// LCG is the linear congruential recurrence x' = (M*x + B) mod C. For a
// shuffle of C cards, it maps the position of a card before the shuffle to
// its position after.
//
// M and B must be less than C, and C must be in [1, 2^63).
type LCG struct {
	M, B, C uint64
}

// Identity returns the map that leaves every position in place.
func Identity(c uint64) LCG {
	return LCG{M: 1 % c, C: c}
}

// Of returns the map performed by t on a deck of c cards. An increment must
// be coprime with c.
func Of(t Technique, c uint64) (LCG, error) {
	switch t.Kind {
	case DealIntoNewStack:
		// x' = c-1-x
		return LCG{M: c - 1, B: c - 1, C: c}, nil
	case Cut:
		// x' = x-N, reduced before negating so N may be any int64.
		n := uint64(aoc.Mod(t.N, int64(c)))
		return LCG{M: 1 % c, B: aoc.SubMod(0, n, c), C: c}, nil
	case DealWithIncrement:
		if err := checkIncrement(t.N, c); err != nil {
			return LCG{}, err
		}
		return LCG{M: uint64(aoc.Mod(t.N, int64(c))), C: c}, nil
	}
	return LCG{}, fmt.Errorf("unknown technique %v", t.Kind)
}

func (f LCG) String() string {
	return fmt.Sprintf("x -> (%d*x + %d) mod %d", f.M, f.B, f.C)
}

// Apply returns f(x).
func (f LCG) Apply(x uint64) uint64 {
	return aoc.AddMod(aoc.MulMod(f.M, x, f.C), f.B, f.C)
}

// Then returns the map that applies f and then g.
func (f LCG) Then(g LCG) LCG {
	if f.C != g.C {
		panic(fmt.Sprintf("composing maps mod %d and mod %d", f.C, g.C))
	}
	return LCG{
		M: aoc.MulMod(g.M, f.M, f.C),
		B: aoc.AddMod(aoc.MulMod(g.M, f.B, f.C), g.B, f.C),
		C: f.C,
	}
}

// Inverse returns the map g such that g(f(x)) == x. It fails when M has no
// inverse mod C.
func (f LCG) Inverse() (LCG, error) {
	inv, err := aoc.ModInverse(int64(f.M), int64(f.C))
	if err != nil {
		return LCG{}, err
	}
	m := uint64(inv)
	return LCG{
		M: m,
		B: aoc.MulMod(m, aoc.SubMod(0, f.B, f.C), f.C),
		C: f.C,
	}, nil
}

// Pow returns f applied n times, using the closed form
//
//	f^n(x) = M^n*x + B*(M^n - 1)/(M - 1)
//
// where the division is by the modular inverse of M-1. If M is 1 the
// geometric series is just n*B. If M-1 has no inverse mod C, Pow falls back
// to PowSquaring.
func (f LCG) Pow(n uint64) LCG {
	mn := aoc.PowMod(f.M, n, f.C)
	if f.M%f.C == 1%f.C {
		return LCG{M: mn, B: aoc.MulMod(n, f.B, f.C), C: f.C}
	}
	inv, err := aoc.ModInverse(int64(aoc.SubMod(f.M, 1, f.C)), int64(f.C))
	if err != nil {
		return f.PowSquaring(n)
	}
	series := aoc.MulMod(aoc.SubMod(mn, 1, f.C), uint64(inv), f.C)
	return LCG{M: mn, B: aoc.MulMod(f.B, series, f.C), C: f.C}
}

// PowSquaring returns f applied n times by composing f with itself through
// repeated squaring. It works for any M.
func (f LCG) PowSquaring(n uint64) LCG {
	result := Identity(f.C)
	for base := f; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Then(base)
		}
		base = base.Then(base)
	}
	return result
}

// Iterate applies f to x n times, one step at a time.
func (f LCG) Iterate(x, n uint64) uint64 {
	x %= f.C
	for ; n > 0; n-- {
		x = f.Apply(x)
	}
	return x
}

// Order returns the smallest k in [1, limit] such that f^k is the identity.
func (f LCG) Order(limit uint64) (uint64, bool) {
	id := Identity(f.C)
	g := f
	for k := uint64(1); k <= limit; k++ {
		if g == id {
			return k, true
		}
		g = g.Then(f)
	}
	return 0, false
}
