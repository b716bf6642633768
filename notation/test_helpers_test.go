package notation_test

import (
	"testing"

	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
	"github.com/stretchr/testify/require"
)

// stdNotes is the canonical 12-EDO seven-letter alphabet used throughout
// the tests.
func stdNotes() map[string]pitch.Value {
	return map[string]pitch.Value{
		"C": pitch.StepValue(0),
		"D": pitch.StepValue(2),
		"E": pitch.StepValue(4),
		"F": pitch.StepValue(5),
		"G": pitch.StepValue(7),
		"A": pitch.StepValue(9),
		"B": pitch.StepValue(11),
	}
}

// stdAccidentals is the plain sharp/flat/natural table.
func stdAccidentals() map[string]pitch.Value {
	return map[string]pitch.Value{
		"#": pitch.StepValue(1),
		"b": pitch.StepValue(-1),
		"n": pitch.StepValue(0),
	}
}

// stdNotation builds the standard notation with octaves and 12 divisions,
// applying any extra options on top.
func stdNotation(t *testing.T, opts ...notation.Option) *notation.Notation {
	t.Helper()
	all := append([]notation.Option{
		notation.WithAccidentals(stdAccidentals()),
		notation.WithDivisions(12),
	}, opts...)
	n, err := notation.New(stdNotes(), all...)
	require.NoError(t, err)

	return n
}

// stdEDO builds the standard alphabet as an EDO instance.
func stdEDO(t *testing.T, opts ...notation.Option) *notation.EDO {
	t.Helper()
	notes := map[string]int{"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11}
	acc := map[string]int{"#": 1, "b": -1, "n": 0}
	e, err := notation.NewEDO(notes, acc, 12, opts...)
	require.NoError(t, err)

	return e
}

// solfegeEDO builds the fixed-do solfège alphabet as an EDO instance.
func solfegeEDO(t *testing.T) *notation.EDO {
	t.Helper()
	notes := map[string]int{"do": 0, "re": 2, "mi": 4, "fa": 5, "sol": 7, "la": 9, "ti": 11}
	acc := map[string]int{"#": 1, "b": -1, "n": 0}
	e, err := notation.NewEDO(notes, acc, 12)
	require.NoError(t, err)

	return e
}

// mustValue resolves a note string or fails the test.
func mustValue(t *testing.T, n *notation.Notation, raw string) pitch.Value {
	t.Helper()
	v, err := n.Value(raw)
	require.NoError(t, err, "resolving %q", raw)

	return v
}
