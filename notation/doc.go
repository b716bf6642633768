// Package notation is the core of gomused: a generic pitch-notation engine
// built from a configurable alphabet of named notes and accidental
// modifiers.
//
// A Notation is configured once and immutable afterwards:
//
//	notes := map[string]pitch.Value{
//	  "C": pitch.StepValue(0), "D": pitch.StepValue(2), "E": pitch.StepValue(4),
//	  "F": pitch.StepValue(5), "G": pitch.StepValue(7), "A": pitch.StepValue(9),
//	  "B": pitch.StepValue(11),
//	}
//	acc := map[string]pitch.Value{
//	  "#": pitch.StepValue(1), "b": pitch.StepValue(-1), "n": pitch.StepValue(0),
//	}
//	n, err := notation.New(notes, notation.WithAccidentals(acc), notation.WithDivisions(12))
//
// and then answers the four questions every higher-level music feature
// needs:
//
//	Parse("Bb3")                 → (note "B", accidentals "b", octave 3)
//	Resolve(parsed) / Value(raw) → the numeric pitch value (steps, cents or ratio)
//	Spell(value, Sharp|Flat)     → a note name + accidental for a value
//	ToneRow()                    → every distinct pitch class the alphabet can name
//
// Note values may be equal-division step counts, floating cents, or
// just-intonation ratios; all notes must share one domain. Accidentals
// normally share it too — a foreign-domain accidental falls back to
// cents-based combination. Note names are matched case-tolerantly (upper,
// title and lower variants) with longest-alias-wins tie-breaking, which is
// what lets multi-character and non-Latin alphabets (solfège, Dutch,
// Japanese, Hindustani, …) parse without any per-script code.
//
// EDO and Just wrap Notation for the two common table shapes: integer
// step alphabets with octave divisions, and ratio alphabets optionally
// normalized into a single octave.
//
// Concurrency: a Notation (and EDO/Just) is safe for arbitrary concurrent
// readers after construction; the tone row is computed lazily exactly once.
//
// Errors:
//
//	ErrConfig   — malformed or self-contradictory configuration (at construction).
//	ErrSyntax   — a string does not match the notation's grammar.
//	ErrDomain   — note and accidental domains cannot be reconciled.
//	ErrNotFound — reverse spelling exhausted without a match; an expected
//	              outcome for values outside the representable alphabet.
package notation
