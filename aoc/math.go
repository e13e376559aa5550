package aoc

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGCD returns g = gcd(|a|, |b|) along with x and y such that
// a*x + b*y = g. Neither a nor b may be the minimum value of T, whose
// absolute value does not fit in T.
func ExtendedGCD[T constraints.Signed](a, b T) (g, x, y T) {
	r0, r1 := AbsDiff(a, 0), AbsDiff(b, 0)
	x0, x1 := T(1), T(0)
	y0, y1 := T(0), T(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	if a < 0 {
		x0 = -x0
	}
	if b < 0 {
		y0 = -y0
	}
	return r0, x0, y0
}

// ErrNoInverse is returned by ModInverse when a and m are not coprime.
var ErrNoInverse = errors.New("no modular inverse")

// ModInverse returns x in [0, m) such that a*x ≡ 1 (mod m).
func ModInverse[T constraints.Signed](a, m T) (T, error) {
	if m <= 0 {
		return 0, fmt.Errorf("modulus %d is not positive", m)
	}
	// Reduce first so ExtendedGCD never sees a negative a.
	g, x, _ := ExtendedGCD(Mod(a, m), m)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, m, g)
	}
	return Mod(x, m), nil
}

// Mod returns a mod m in [0, m). m must be positive.
func Mod[T constraints.Signed](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// MulMod returns (a*b) mod m using a 128-bit intermediate product.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// AddMod returns (a+b) mod m.
func AddMod(a, b, m uint64) uint64 {
	s, c := bits.Add64(a%m, b%m, 0)
	if c == 1 || s >= m {
		s -= m
	}
	return s
}

// SubMod returns (a-b) mod m in [0, m).
func SubMod(a, b, m uint64) uint64 {
	return AddMod(a, m-b%m, m)
}

// PowMod returns base**exp mod m by repeated squaring.
func PowMod(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, m)
		}
		base = MulMod(base, base, m)
		exp >>= 1
	}
	return result
}
