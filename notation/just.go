package notation

import (
	"fmt"
	"sync"

	"github.com/SamuelHill/gomused/pitch"
)

// Just is a Notation over just-intonation ratio tables. When limiting is
// on (the usual case) every note value is normalized into the [1, 2]
// octave window at construction, and the tone row is re-limited the same
// way, so enharmonic comparison happens within a single octave.
type Just struct {
	*Notation

	limited bool

	rowOnce sync.Once
	row     []Alias
	rowErr  error
}

// NewJust builds a just-intonation notation from ratio tables.
// accidentals may be nil. limitToOctave folds the note values into one
// octave; accidental modifiers are never folded, since they are relative
// adjustments rather than pitch classes.
func NewJust(notes map[string]pitch.Ratio, accidentals map[string]pitch.Ratio, limitToOctave bool, opts ...Option) (*Just, error) {
	noteVals := make(map[string]pitch.Value, len(notes))
	for name, r := range notes {
		rr, err := pitch.NewRatio(r.Num, r.Den)
		if err != nil {
			return nil, fmt.Errorf("%w: note %q: %v", ErrConfig, name, err)
		}
		if limitToOctave {
			rr = rr.LimitOctave()
		}
		noteVals[name] = pitch.FromRatio(rr)
	}

	var all []Option
	if accidentals != nil {
		accVals := make(map[string]pitch.Value, len(accidentals))
		for sym, r := range accidentals {
			rr, err := pitch.NewRatio(r.Num, r.Den)
			if err != nil {
				return nil, fmt.Errorf("%w: accidental %q: %v", ErrConfig, sym, err)
			}
			accVals[sym] = pitch.FromRatio(rr)
		}
		all = append(all, WithAccidentals(accVals))
	}
	all = append(all, opts...)

	n, err := New(noteVals, all...)
	if err != nil {
		return nil, err
	}

	return &Just{Notation: n, limited: limitToOctave}, nil
}

// Limited reports whether note values are folded into the octave window.
func (j *Just) Limited() bool { return j.limited }

// ToneRow enumerates the alphabet like Notation.ToneRow and, when limiting
// is on, folds every ratio back into the [1, 2] window before sorting —
// accidental combinations can step outside the octave even when the bare
// notes are inside it. Values that collide after folding keep their first
// alias in sort order.
func (j *Just) ToneRow() ([]Alias, error) {
	j.rowOnce.Do(func() {
		j.row, j.rowErr = j.buildJustToneRow()
	})
	if j.rowErr != nil {
		return nil, j.rowErr
	}

	return append([]Alias(nil), j.row...), nil
}

func (j *Just) buildJustToneRow() ([]Alias, error) {
	row, err := j.Notation.ToneRow()
	if err != nil {
		return nil, err
	}
	if !j.limited {
		return row, nil
	}

	for i, a := range row {
		if a.Value.Kind() == pitch.RatioKind {
			row[i].Value = pitch.FromRatio(a.Value.Ratio().LimitOctave())
		}
	}
	sortAliases(row)

	out := row[:0]
	seen := make(map[pitch.Value]struct{}, len(row))
	for _, a := range row {
		if _, dup := seen[a.Value]; dup {
			continue
		}
		seen[a.Value] = struct{}{}
		out = append(out, a)
	}

	return out, nil
}
