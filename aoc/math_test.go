package aoc

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestExtendedGCD(t *testing.T) {
	tests := []struct {
		a, b  int64
		wantG int64
	}{
		{240, 46, 2},
		{46, 240, 2},
		{-240, 46, 2},
		{240, -46, 2},
		{17, 3120, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{7975 - 1, 119315717514047, 1},
	}
	for _, tt := range tests {
		g, x, y := ExtendedGCD(tt.a, tt.b)
		if g != tt.wantG {
			t.Errorf("ExtendedGCD(%d, %d) g = %d, want %d", tt.a, tt.b, g, tt.wantG)
		}
		if got := tt.a*x + tt.b*y; got != g {
			t.Errorf("ExtendedGCD(%d, %d) = %d, %d, %d; a*x + b*y = %d", tt.a, tt.b, g, x, y, got)
		}
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, m, want int64
	}{
		{3, 11, 4},
		{7, 10, 3},
		{17, 3120, 2753},
		{-3, 11, 7},
		{8036, 119315717514047, 100563135231787},
		{5, 1, 0},
	}
	for _, tt := range tests {
		got, err := ModInverse(tt.a, tt.m)
		if err != nil {
			t.Errorf("ModInverse(%d, %d): %v", tt.a, tt.m, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ModInverse(%d, %d) = %d, want %d", tt.a, tt.m, got, tt.want)
		}
	}
}

func TestModInverseProperty(t *testing.T) {
	for m := int64(2); m < 200; m++ {
		for a := int64(-m); a < 2*m; a++ {
			got, err := ModInverse(a, m)
			if GCD(Mod(a, m), m) != 1 {
				if !errors.Is(err, ErrNoInverse) {
					t.Fatalf("ModInverse(%d, %d) = %d, %v; want ErrNoInverse", a, m, got, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("ModInverse(%d, %d): %v", a, m, err)
			}
			if got < 0 || got >= m {
				t.Fatalf("ModInverse(%d, %d) = %d, out of range", a, m, got)
			}
			if Mod(a*got, m) != 1 {
				t.Fatalf("%d * ModInverse(%d, %d) = %d mod %d, want 1", a, a, m, Mod(a*got, m), m)
			}
		}
	}
}

func TestModInverseBig(t *testing.T) {
	const m = 119315717514047
	for _, a := range []int64{2, 7974, 8036, 10007, 98765432101, m - 1} {
		got, err := ModInverse(a, m)
		if err != nil {
			t.Fatalf("ModInverse(%d, %d): %v", a, int64(m), err)
		}
		want := new(big.Int).ModInverse(big.NewInt(a), big.NewInt(m))
		if want.Int64() != got {
			t.Errorf("ModInverse(%d, %d) = %d, want %v", a, int64(m), got, want)
		}
	}
}

func TestModInverseExtremes(t *testing.T) {
	const m = 10007
	for _, a := range []int64{math.MinInt64, math.MinInt64 + 1, math.MaxInt64} {
		got, err := ModInverse(a, m)
		if err != nil {
			t.Fatalf("ModInverse(%d, %d): %v", a, m, err)
		}
		want := new(big.Int).ModInverse(new(big.Int).Mod(big.NewInt(a), big.NewInt(m)), big.NewInt(m))
		if got != want.Int64() {
			t.Errorf("ModInverse(%d, %d) = %d, want %v", a, m, got, want)
		}
	}
}

func TestModInverseErrors(t *testing.T) {
	if _, err := ModInverse(4, 10); !errors.Is(err, ErrNoInverse) {
		t.Errorf("ModInverse(4, 10) err = %v, want ErrNoInverse", err)
	}
	if _, err := ModInverse(3, 0); err == nil || errors.Is(err, ErrNoInverse) {
		t.Errorf("ModInverse(3, 0) err = %v, want non-positive modulus error", err)
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, m, want int
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{-3, 3, 0},
		{0, 5, 0},
		{-2, 10, 8},
	}
	for _, tt := range tests {
		if got := Mod(tt.a, tt.m); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.a, tt.m, got, tt.want)
		}
	}
}

func TestModArith(t *testing.T) {
	const m = 119315717514047
	bm := new(big.Int).SetUint64(m)
	vals := []uint64{0, 1, 2, 2020, 7975, 8036, m / 2, m - 2, m - 1}
	for _, a := range vals {
		for _, b := range vals {
			ba, bb := new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)

			want := new(big.Int).Mul(ba, bb)
			want.Mod(want, bm)
			if got := MulMod(a, b, m); got != want.Uint64() {
				t.Errorf("MulMod(%d, %d) = %d, want %v", a, b, got, want)
			}

			want.Add(ba, bb).Mod(want, bm)
			if got := AddMod(a, b, m); got != want.Uint64() {
				t.Errorf("AddMod(%d, %d) = %d, want %v", a, b, got, want)
			}

			want.Sub(ba, bb).Mod(want, bm)
			if got := SubMod(a, b, m); got != want.Uint64() {
				t.Errorf("SubMod(%d, %d) = %d, want %v", a, b, got, want)
			}

			want.Exp(ba, bb, bm)
			if got := PowMod(a, b, m); got != want.Uint64() {
				t.Errorf("PowMod(%d, %d) = %d, want %v", a, b, got, want)
			}
		}
	}
}

func TestPowModOne(t *testing.T) {
	if got := PowMod(5, 3, 1); got != 0 {
		t.Errorf("PowMod(5, 3, 1) = %d, want 0", got)
	}
	if got := PowMod(5, 0, 7); got != 1 {
		t.Errorf("PowMod(5, 0, 7) = %d, want 1", got)
	}
}

func TestGCD(t *testing.T) {
	if got := GCD(12, 18); got != 6 {
		t.Errorf("GCD(12, 18) = %d, want 6", got)
	}
	if got := GCD[uint64](10007, 10); got != 1 {
		t.Errorf("GCD(10007, 10) = %d, want 1", got)
	}
}
