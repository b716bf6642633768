package notation

import "github.com/SamuelHill/gomused/pitch"

// ToneRow enumerates every distinct pitch class this notation can name:
// each bare note plus every (note, accidental) pairing, resolved,
// deduplicated by resulting value and sorted ascending. Bare notes are
// enumerated first, so they win the alias for values they share with an
// accidental spelling.
//
// The row is a pure function of the immutable configuration; it is
// computed once on first request and cached. The returned slice is a copy.
func (n *Notation) ToneRow() ([]Alias, error) {
	n.rowOnce.Do(func() {
		n.row, n.rowErr = n.buildToneRow()
	})
	if n.rowErr != nil {
		return nil, n.rowErr
	}

	return append([]Alias(nil), n.row...), nil
}

func (n *Notation) buildToneRow() ([]Alias, error) {
	names := append([]string(nil), n.order...)
	for _, sym := range n.accOrder {
		for _, note := range n.order {
			names = append(names, note+sym)
		}
	}

	seen := make(map[pitch.Value]struct{}, len(names))
	row := make([]Alias, 0, len(names))
	for _, name := range names {
		v, err := n.Value(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		row = append(row, Alias{Name: name, Value: v})
	}
	sortAliases(row)

	return row, nil
}

// Notes lists the canonical note names in ascending-value order.
func (n *Notation) Notes() []string {
	return append([]string(nil), n.order...)
}

// NoteValue looks up the base value of a canonical note name.
func (n *Notation) NoteValue(name string) (pitch.Value, bool) {
	v, ok := n.notes[name]

	return v, ok
}

// Accidentals lists the configured accidental symbols in ascending-value
// order, or nil when none are configured.
func (n *Notation) Accidentals() []string {
	return append([]string(nil), n.accOrder...)
}

// AccidentalValue looks up the modifier value of an accidental symbol.
func (n *Notation) AccidentalValue(sym string) (pitch.Value, bool) {
	v, ok := n.accidentals[sym]

	return v, ok
}

// Divisions reports the configured octave division count, zero when none.
func (n *Notation) Divisions() int { return n.divisions }

// UsesOctaves reports whether octave numbers are recognized.
func (n *Notation) UsesOctaves() bool { return n.useOctaves }

// Warnings returns the configuration-time warnings recorded by New, such
// as the negative-octave ambiguity guard.
func (n *Notation) Warnings() []string {
	return append([]string(nil), n.warnings...)
}
