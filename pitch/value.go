package pitch

import (
	"fmt"
	"strconv"
)

// Kind tags the numeric domain a Value belongs to.
type Kind int

const (
	// StepKind values are integer step counts in an equal-division system.
	StepKind Kind = iota

	// CentKind values are floating-point cents (1200 per octave).
	CentKind

	// RatioKind values are just-intonation frequency ratios.
	RatioKind
)

// String names the kind for error messages.
func (k Kind) String() string {
	switch k {
	case StepKind:
		return "steps"
	case CentKind:
		return "cents"
	case RatioKind:
		return "ratio"
	default:
		return "unknown"
	}
}

// Value is a pitch value tagged with its domain. The zero Value is zero
// steps. Values are comparable: v1 == v2 holds iff both the domain and the
// numeric payload match (ratios are always in lowest terms, so ratio
// equality is exact).
type Value struct {
	kind  Kind
	steps int
	cents float64
	ratio Ratio
}

// StepValue builds an integer step-count value.
func StepValue(n int) Value {
	return Value{kind: StepKind, steps: n}
}

// CentValue builds a floating cents value.
func CentValue(c float64) Value {
	return Value{kind: CentKind, cents: c}
}

// RatioValue builds a ratio value in lowest terms.
// Returns ErrBadRatio unless both terms are positive.
func RatioValue(num, den int) (Value, error) {
	r, err := NewRatio(num, den)
	if err != nil {
		return Value{}, err
	}

	return Value{kind: RatioKind, ratio: r}, nil
}

// FromRatio wraps an existing Ratio as a Value, re-simplifying it.
func FromRatio(r Ratio) Value {
	return Value{kind: RatioKind, ratio: r.Simplify()}
}

// Kind reports the value's domain.
func (v Value) Kind() Kind { return v.kind }

// Steps returns the step-count payload. Meaningful only for StepKind.
func (v Value) Steps() int { return v.steps }

// Cents returns the cents payload. Meaningful only for CentKind; use
// ToCents to convert across domains.
func (v Value) Cents() float64 { return v.cents }

// Ratio returns the ratio payload. Meaningful only for RatioKind.
func (v Value) Ratio() Ratio { return v.ratio }

// ToCents projects the value into the cents domain.
//
// Step values need to know how many divisions the octave has; divisions
// must be positive for StepKind input and is ignored otherwise.
func (v Value) ToCents(divisions int) (float64, error) {
	switch v.kind {
	case StepKind:
		if divisions <= 0 {
			return 0, fmt.Errorf("pitch: cannot convert %d steps to cents without octave divisions", v.steps)
		}

		return float64(v.steps) * (1200 / float64(divisions)), nil
	case CentKind:
		return v.cents, nil
	case RatioKind:
		return v.ratio.Cents(), nil
	default:
		return 0, fmt.Errorf("pitch: unknown value kind %d", v.kind)
	}
}

// ordering projects the value onto a float axis for sorting. Step counts
// and cents intentionally share the axis, matching the canonical note
// ordering of mixed tables: raw magnitude, not a unit conversion.
func (v Value) ordering() float64 {
	switch v.kind {
	case CentKind:
		return v.cents
	case RatioKind:
		return v.ratio.Float()
	default:
		return float64(v.steps)
	}
}

// Less orders two values by their numeric projection. Used for canonical
// note tables and tone rows; equal projections are a tie.
func Less(a, b Value) bool {
	return a.ordering() < b.ordering()
}

// String renders the value with a domain marker: "7", "150c" or "3/2".
func (v Value) String() string {
	switch v.kind {
	case CentKind:
		return strconv.FormatFloat(v.cents, 'g', -1, 64) + "c"
	case RatioKind:
		return v.ratio.String()
	default:
		return strconv.Itoa(v.steps)
	}
}
