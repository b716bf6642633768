package pitch

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadRatio indicates a ratio term that is zero or negative.
var ErrBadRatio = errors.New("pitch: ratio terms must be positive integers")

// Ratio is a just-intonation frequency ratio Num/Den.
//
// Both terms are positive. Operations that return a Ratio always return it
// in lowest terms, so two Ratios describe the same interval iff they are
// equal with ==.
type Ratio struct {
	Num int
	Den int
}

// NewRatio builds a Ratio in lowest terms.
// Returns ErrBadRatio unless both terms are positive.
func NewRatio(num, den int) (Ratio, error) {
	if num <= 0 || den <= 0 {
		return Ratio{}, fmt.Errorf("%w: %d/%d", ErrBadRatio, num, den)
	}

	return Ratio{Num: num, Den: den}.Simplify(), nil
}

// Simplify divides both terms by their greatest common divisor.
func (r Ratio) Simplify() Ratio {
	d := gcd(r.Num, r.Den)
	if d == 0 {
		return r
	}

	return Ratio{Num: r.Num / d, Den: r.Den / d}
}

// Mul returns r·o in lowest terms.
// Multiplying ratios stacks intervals: 3/2 · 4/3 = 2/1, a fifth plus a
// fourth is an octave.
func (r Ratio) Mul(o Ratio) Ratio {
	return Ratio{Num: r.Num * o.Num, Den: r.Den * o.Den}.Simplify()
}

// Div returns r/o in lowest terms.
// Dividing ratios is the difference between two intervals: the Pythagorean
// whole tone is the gap between the fifth and the fourth, 3/2 ÷ 4/3 = 9/8.
func (r Ratio) Div(o Ratio) Ratio {
	return Ratio{Num: r.Num * o.Den, Den: r.Den * o.Num}.Simplify()
}

// Cents converts r to cents via 1200·log2(Num/Den).
func (r Ratio) Cents() float64 {
	return 1200 * math.Log2(float64(r.Num)/float64(r.Den))
}

// Float returns Num/Den as a float64, the ordering key used when sorting
// mixed note tables.
func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// LimitOctave normalizes r into the [1, 2] window by repeated doubling or
// halving. Each step strictly shrinks the distance to the window, so the
// loop terminates for every positive ratio. LimitOctave is idempotent.
func (r Ratio) LimitOctave() Ratio {
	octave := Ratio{Num: 2, Den: 1}
	out := r.Simplify()
	for out.Float() < 1.0 {
		out = out.Mul(octave)
	}
	for out.Float() > 2.0 {
		out = out.Div(octave)
	}

	return out
}

// Equivalent reports whether r and o name the same pitch class, i.e.
// whether their octave-limited forms are equal.
func (r Ratio) Equivalent(o Ratio) bool {
	return r.LimitOctave() == o.LimitOctave()
}

// String renders the ratio as "Num/Den".
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// WrapSteps wraps a (possibly negative) step count into [0, divisions),
// one octave of an equal-division system.
func WrapSteps(v, divisions int) int {
	return ((v % divisions) + divisions) % divisions
}

// gcd computes the greatest common divisor by Euclid's algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
