package notation_test

import (
	"testing"

	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToneRow_Standard checks the general enumeration over the standard
// alphabet: 14 distinct values from Cb down at -1 up to B# at 12, bare
// names winning the alias wherever they collide with a spelled one.
func TestToneRow_Standard(t *testing.T) {
	n := stdNotation(t)

	row, err := n.ToneRow()
	require.NoError(t, err)
	require.Len(t, row, 14)

	want := []notation.Alias{
		{Name: "Cb", Value: pitch.StepValue(-1)},
		{Name: "C", Value: pitch.StepValue(0)},
		{Name: "Db", Value: pitch.StepValue(1)},
		{Name: "D", Value: pitch.StepValue(2)},
		{Name: "Eb", Value: pitch.StepValue(3)},
		{Name: "E", Value: pitch.StepValue(4)},
		{Name: "F", Value: pitch.StepValue(5)},
		{Name: "Gb", Value: pitch.StepValue(6)},
		{Name: "G", Value: pitch.StepValue(7)},
		{Name: "Ab", Value: pitch.StepValue(8)},
		{Name: "A", Value: pitch.StepValue(9)},
		{Name: "Bb", Value: pitch.StepValue(10)},
		{Name: "B", Value: pitch.StepValue(11)},
		{Name: "B#", Value: pitch.StepValue(12)},
	}
	assert.Equal(t, want, row)
}

// TestToneRow_Cached verifies that the enumeration is computed once and
// that callers cannot corrupt the cached row.
func TestToneRow_Cached(t *testing.T) {
	n := stdNotation(t)

	first, err := n.ToneRow()
	require.NoError(t, err)
	first[0].Name = "corrupted"

	second, err := n.ToneRow()
	require.NoError(t, err)
	assert.Equal(t, "Cb", second[0].Name, "returned slice is a copy")
}

// TestToneRow_EDO checks the equal-division specialization: every pitch
// class in the octave gets a name, unnamed classes keep both the flat and
// the sharp spelling, and the row stays sorted.
func TestToneRow_EDO(t *testing.T) {
	e := stdEDO(t)

	row, err := e.ToneRow()
	require.NoError(t, err)
	require.Len(t, row, 17, "7 bare names plus flat and sharp for the 5 gaps")

	classes := make(map[int][]string, 12)
	for i, a := range row {
		require.Equal(t, pitch.StepKind, a.Value.Kind())
		classes[a.Value.Steps()] = append(classes[a.Value.Steps()], a.Name)
		if i > 0 {
			assert.False(t, pitch.Less(a.Value, row[i-1].Value), "row must be sorted")
		}
	}
	require.Len(t, classes, 12, "every pitch class is reachable")

	assert.Equal(t, []string{"C"}, classes[0], "bare names stay alone")
	assert.ElementsMatch(t, []string{"C#", "Db"}, classes[1])
	assert.ElementsMatch(t, []string{"F#", "Gb"}, classes[6])
	assert.ElementsMatch(t, []string{"A#", "Bb"}, classes[10])
}

// TestToneRow_EDOWithoutAccidentals verifies that a bare alphabet
// enumerates only its own names.
func TestToneRow_EDOWithoutAccidentals(t *testing.T) {
	e, err := notation.NewEDO(map[string]int{"C": 0, "G": 7}, nil, 12)
	require.NoError(t, err)

	row, err := e.ToneRow()
	require.NoError(t, err)
	assert.Equal(t, []notation.Alias{
		{Name: "C", Value: pitch.StepValue(0)},
		{Name: "G", Value: pitch.StepValue(7)},
	}, row)
}

// TestToneRow_JustLimited checks that the just-intonation row folds
// accidental spellings back into the octave window before sorting.
func TestToneRow_JustLimited(t *testing.T) {
	notes := map[string]pitch.Ratio{"C": {Num: 1, Den: 1}, "G": {Num: 3, Den: 2}}
	acc := map[string]pitch.Ratio{
		"#": {Num: 2187, Den: 2048},
		"b": {Num: 2048, Den: 2187},
	}
	j, err := notation.NewJust(notes, acc, true)
	require.NoError(t, err)

	row, err := j.ToneRow()
	require.NoError(t, err)
	require.Len(t, row, 6)

	for i, a := range row {
		r := a.Value.Ratio()
		assert.GreaterOrEqual(t, r.Float(), 1.0, "%s below the window", a.Name)
		assert.Less(t, r.Float(), 2.0, "%s above the window", a.Name)
		if i > 0 {
			assert.False(t, pitch.Less(a.Value, row[i-1].Value), "row must be sorted")
		}
	}

	// Cb starts below 1/1 and folds to 4096/2187, near the top of the row.
	last := row[len(row)-1]
	assert.Equal(t, "Cb", last.Name)
	assert.Equal(t, pitch.Ratio{Num: 4096, Den: 2187}, last.Value.Ratio())
}
