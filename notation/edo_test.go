package notation_test

import (
	"testing"

	"github.com/SamuelHill/gomused/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEDO_ConfigErrors(t *testing.T) {
	_, err := notation.NewEDO(map[string]int{"C": 0}, nil, 0)
	assert.ErrorIs(t, err, notation.ErrConfig)

	_, err = notation.NewEDO(map[string]int{"C": 0}, nil, -12)
	assert.ErrorIs(t, err, notation.ErrConfig)
}

// TestNoteFromValue covers octave splitting, bias selection and negative
// values, where truncating division keeps the octave with the sign.
func TestNoteFromValue(t *testing.T) {
	e := stdEDO(t)

	cases := []struct {
		steps int
		bias  notation.Bias
		want  string
	}{
		{48, notation.Sharp, "C4"},
		{34, notation.Flat, "Bb2"},
		{13, notation.Sharp, "C#1"},
		{13, notation.Flat, "Db1"},
		{0, notation.Sharp, "C0"},
		{-1, notation.Flat, "Cb0"},
		{-24, notation.Sharp, "C-2"},
	}
	for _, tc := range cases {
		name, err := e.NoteFromValue(tc.steps, tc.bias)
		require.NoError(t, err, "steps %d", tc.steps)
		assert.Equal(t, tc.want, name, "steps %d under %s", tc.steps, tc.bias)
	}
}

// TestNoteFromValue_WithoutOctaves verifies that no octave number is
// appended when octave tracking is off.
func TestNoteFromValue_WithoutOctaves(t *testing.T) {
	e := stdEDO(t, notation.WithoutOctaves())

	name, err := e.NoteFromValue(13, notation.Sharp)
	require.NoError(t, err)
	assert.Equal(t, "C#", name)
}

// TestSimplify collapses stacked accidentals while keeping the octave.
func TestSimplify(t *testing.T) {
	e := stdEDO(t)

	cases := []struct {
		note string
		bias notation.Bias
		want string
	}{
		{"Dbb4", notation.Sharp, "C4"},
		{"C##", notation.Sharp, "D"},
		{"B#3", notation.Sharp, "C3"},
		{"Fb", notation.Flat, "E"},
		{"Cn5", notation.Sharp, "C5"},
	}
	for _, tc := range cases {
		got, err := e.Simplify(tc.note, tc.bias)
		require.NoError(t, err, "simplifying %q", tc.note)
		assert.Equal(t, tc.want, got, "simplifying %q under %s", tc.note, tc.bias)
	}

	_, err := e.Simplify("H", notation.Sharp)
	assert.ErrorIs(t, err, notation.ErrSyntax)
}

// TestTranslate spells raw step slices in one call.
func TestTranslate(t *testing.T) {
	e := stdEDO(t, notation.WithoutOctaves())

	names, err := e.Translate([]int{0, 4, 7, 10}, notation.Flat)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E", "G", "Bb"}, names)
}

// TestTranslateFrom respells solfège note names into letter names.
func TestTranslateFrom(t *testing.T) {
	e := stdEDO(t)
	sol := solfegeEDO(t)

	names, err := e.TranslateFrom([]string{"do4", "mi4", "sol#4"}, sol, notation.Sharp)
	require.NoError(t, err)
	assert.Equal(t, []string{"C4", "E4", "G#4"}, names)

	back, err := sol.TranslateFrom(names, e, notation.Flat)
	require.NoError(t, err)
	assert.Equal(t, []string{"do4", "mi4", "lab4"}, back)
}

// TestTranspose shifts notes by a step offset, crossing octave borders.
func TestTranspose(t *testing.T) {
	e := stdEDO(t)

	up, err := e.Transpose([]string{"C4", "E4", "B4"}, 2, notation.Sharp)
	require.NoError(t, err)
	assert.Equal(t, []string{"D4", "F#4", "C#5"}, up)

	down, err := e.Transpose([]string{"C4"}, -1, notation.Flat)
	require.NoError(t, err)
	assert.Equal(t, []string{"B3"}, down)

	_, err = e.Transpose([]string{"X"}, 2, notation.Sharp)
	assert.ErrorIs(t, err, notation.ErrSyntax)
}
