package notation

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/SamuelHill/gomused/pitch"
)

// EDO is a Notation over an equal division of the octave: integer note and
// accidental tables plus a positive division count. It adds the operations
// that only make sense when every pitch class is a step number —
// translating raw step values back to names, simplifying accidental piles,
// and transposition.
type EDO struct {
	*Notation

	rowOnce sync.Once
	row     []Alias
	rowErr  error
}

// NewEDO builds an equal-division notation from integer tables.
// divisions must be positive; accidentals may be nil. Options other than
// WithAccidentals/WithDivisions (which NewEDO supplies itself) pass through
// to New.
func NewEDO(notes map[string]int, accidentals map[string]int, divisions int, opts ...Option) (*EDO, error) {
	if divisions <= 0 {
		return nil, fmt.Errorf("%w: equal-division systems need a positive division count", ErrConfig)
	}

	noteVals := make(map[string]pitch.Value, len(notes))
	for name, v := range notes {
		noteVals[name] = pitch.StepValue(v)
	}

	all := []Option{WithDivisions(divisions)}
	if accidentals != nil {
		accVals := make(map[string]pitch.Value, len(accidentals))
		for sym, v := range accidentals {
			accVals[sym] = pitch.StepValue(v)
		}
		all = append(all, WithAccidentals(accVals))
	}
	all = append(all, opts...)

	n, err := New(noteVals, all...)
	if err != nil {
		return nil, err
	}

	return &EDO{Notation: n}, nil
}

// NoteFromValue spells a raw step count as a note name, splitting it into
// octave and pitch class first. The octave number is appended when octaves
// are tracked.
func (e *EDO) NoteFromValue(steps int, bias Bias) (string, error) {
	octaves := steps / e.divisions // truncation keeps the sign with the value
	class := steps - octaves*e.divisions

	name, err := e.Spell(pitch.StepValue(class), bias)
	if err != nil {
		return "", err
	}
	if e.useOctaves {
		return name + strconv.Itoa(octaves), nil
	}

	return name, nil
}

// Simplify collapses a note's accidental pile to the plainest spelling of
// the same pitch class under the given bias, reattaching the original
// octave: Simplify("Dbb4", Sharp) is "C4".
func (e *EDO) Simplify(note string, bias Bias) (string, error) {
	p, err := e.Parse(note)
	if err != nil {
		return "", err
	}
	steps, err := e.classOf(p)
	if err != nil {
		return "", err
	}

	name, err := e.Spell(pitch.StepValue(steps), bias)
	if err != nil {
		return "", err
	}
	if p.HasOctave {
		name += strconv.Itoa(p.Octave)
	}

	return name, nil
}

// classOf sums a parsed note's base value and accidental modifiers and
// wraps the sum into one octave, ignoring any octave number.
func (e *EDO) classOf(p ParsedNote) (int, error) {
	base, ok := e.notes[p.Name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown note name %q", ErrSyntax, p.Name)
	}

	syms, err := e.splitRun(p.Accidentals)
	if err != nil {
		return 0, err
	}
	sum := base.Steps()
	for _, sym := range syms {
		v := e.accidentals[sym]
		if v.Kind() != pitch.StepKind {
			return 0, fmt.Errorf("%w: accidental %q is not step-valued", ErrDomain, sym)
		}
		sum += v.Steps()
	}

	return pitch.WrapSteps(sum, e.divisions), nil
}

// Translate spells a slice of raw step values under one bias.
func (e *EDO) Translate(values []int, bias Bias) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		name, err := e.NoteFromValue(v, bias)
		if err != nil {
			return nil, err
		}
		out[i] = name
	}

	return out, nil
}

// TranslateFrom respells notes written in another equal-division notation
// into this one: each note is resolved by the source system and the raw
// values are spelled here.
func (e *EDO) TranslateFrom(notes []string, source *EDO, bias Bias) ([]string, error) {
	values := make([]int, len(notes))
	for i, note := range notes {
		v, err := source.Value(note)
		if err != nil {
			return nil, err
		}
		if v.Kind() != pitch.StepKind {
			return nil, fmt.Errorf("%w: %q does not resolve to a step value", ErrDomain, note)
		}
		values[i] = v.Steps()
	}

	return e.Translate(values, bias)
}

// Transpose shifts every note by a step offset and respells the results.
func (e *EDO) Transpose(notes []string, by int, bias Bias) ([]string, error) {
	values := make([]int, len(notes))
	for i, note := range notes {
		v, err := e.Value(note)
		if err != nil {
			return nil, err
		}
		if v.Kind() != pitch.StepKind {
			return nil, fmt.Errorf("%w: %q does not resolve to a step value", ErrDomain, note)
		}
		values[i] = v.Steps() + by
	}

	return e.Translate(values, bias)
}

// ToneRow specializes the general enumeration for equal-division systems:
// every bare note keeps its name, and each pitch class with no bare name
// is filled from the flat bucket first, then the sharp bucket, keeping
// both spellings when both exist. For the standard 12-division seven-letter
// alphabet every one of the 12 pitch classes receives at least one name.
func (e *EDO) ToneRow() ([]Alias, error) {
	e.rowOnce.Do(func() {
		e.row, e.rowErr = e.buildEDOToneRow()
	})
	if e.rowErr != nil {
		return nil, e.rowErr
	}

	return append([]Alias(nil), e.row...), nil
}

func (e *EDO) buildEDOToneRow() ([]Alias, error) {
	row := make([]Alias, 0, e.divisions)
	named := make(map[int]struct{}, len(e.order))
	for _, name := range e.order {
		v := e.notes[name]
		row = append(row, Alias{Name: name, Value: v})
		named[pitch.WrapSteps(v.Steps(), e.divisions)] = struct{}{}
	}

	if len(e.accOrder) > 0 {
		for class := 0; class < e.divisions; class++ {
			if _, ok := named[class]; ok {
				continue
			}
			for _, bias := range [2]Bias{Flat, Sharp} {
				name, err := e.Spell(pitch.StepValue(class), bias)
				if err != nil {
					continue
				}
				row = append(row, Alias{Name: name, Value: pitch.StepValue(class)})
			}
		}
	}
	sortAliases(row)

	return row, nil
}
