package fifths_test

import (
	"testing"

	"github.com/SamuelHill/gomused/fifths"
	"github.com/SamuelHill/gomused/twelvetone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelative(t *testing.T) {
	c := fifths.Standard()

	cases := map[string]string{
		"C": "a", "G": "e", "F": "d", "Eb": "c", "F#": "d#",
		"a": "C", "e": "G", "b": "D", "eb": "Gb",
	}
	for key, want := range cases {
		got, err := c.Relative(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, "relative of %s", key)
	}

	_, err := c.Relative("H")
	assert.ErrorIs(t, err, fifths.ErrUnknownKey)
}

func TestParallel(t *testing.T) {
	c := fifths.Standard()

	cases := map[string]string{
		"C": "c", "A": "a", "Eb": "eb", "F#": "f#",
		"c": "C", "b": "B", "eb": "Eb",
	}
	for key, want := range cases {
		got, err := c.Parallel(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, "parallel of %s", key)
	}

	_, err := c.Parallel("X")
	assert.ErrorIs(t, err, fifths.ErrUnknownKey)
}

func TestKeySignature(t *testing.T) {
	c := fifths.Standard()

	cases := map[string][]string{
		"C":  {},
		"D":  {"F#", "C#"},
		"B":  {"F#", "C#", "G#", "D#", "A#"},
		"F":  {"Bb"},
		"Ab": {"Bb", "Eb", "Ab", "Db"},
		"a":  {},
		"d":  {"Bb"},
		"f#": {"F#", "C#", "G#"},
	}
	for key, want := range cases {
		got, err := c.KeySignature(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, "signature of %s", key)
	}
}

func TestNotesInKey(t *testing.T) {
	c := fifths.Standard()

	cases := map[string][]string{
		"C":  {"C", "D", "E", "F", "G", "A", "B"},
		"F":  {"F", "G", "A", "Bb", "C", "D", "E"},
		"D":  {"D", "E", "F#", "G", "A", "B", "C#"},
		"Cb": {"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"},
		"a":  {"A", "B", "C", "D", "E", "F", "G"},
		"bb": {"Bb", "C", "Db", "Eb", "F", "Gb", "Ab"},
	}
	for key, want := range cases {
		got, err := c.NotesInKey(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, "notes of %s", key)
	}
}

func TestNoteInKey(t *testing.T) {
	c := fifths.Standard()

	in, err := c.NoteInKey("Bb", "F")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = c.NoteInKey("B", "F")
	require.NoError(t, err)
	assert.False(t, in, "F major carries Bb, not B")
}

func TestSolfegeCircle(t *testing.T) {
	c := fifths.SolfegeCircle()

	rel, err := c.Relative("DO")
	require.NoError(t, err)
	assert.Equal(t, "la", rel)

	sig, err := c.KeySignature("RE")
	require.NoError(t, err)
	assert.Equal(t, []string{"fa#", "do#"}, sig)

	notes, err := c.NotesInKey("FA")
	require.NoError(t, err)
	assert.Equal(t, []string{"fa", "sol", "la", "tib", "do", "re", "mi"}, notes)
}

func TestUnicodeCircle(t *testing.T) {
	c := fifths.Unicode()

	sig, err := c.KeySignature("F")
	require.NoError(t, err)
	assert.Equal(t, []string{"B♭"}, sig)

	notes, err := c.NotesInKey("E♭")
	require.NoError(t, err)
	assert.Equal(t, []string{"E♭", "F", "G", "A♭", "B♭", "C", "D"}, notes)
}

func TestNew_Validation(t *testing.T) {
	e := twelvetone.Standard()

	_, err := fifths.New(e, fifths.Config{
		Majors:       map[string]int{"C": 8},
		Minors:       fifths.DefaultMinors,
		OrderOfFlats: fifths.OrderOfFlats,
		SharpSymbol:  "#", FlatSymbol: "b",
	})
	assert.ErrorIs(t, err, fifths.ErrTooManyAccidentals)

	_, err = fifths.New(e, fifths.Config{
		Majors:       map[string]int{"X": 0},
		Minors:       fifths.DefaultMinors,
		OrderOfFlats: fifths.OrderOfFlats,
		SharpSymbol:  "#", FlatSymbol: "b",
	})
	assert.ErrorIs(t, err, fifths.ErrUnknownKey)
}
