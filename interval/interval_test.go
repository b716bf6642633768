package interval_test

import (
	"testing"

	"github.com/SamuelHill/gomused/interval"
	"github.com/SamuelHill/gomused/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	n, err := interval.ParseInterval("M6")
	require.NoError(t, err)
	assert.Equal(t, interval.Name{Quality: 'M', Count: 1, Degree: 6}, n)

	n, err = interval.ParseInterval("AA4")
	require.NoError(t, err)
	assert.Equal(t, interval.Name{Quality: 'A', Count: 2, Degree: 4}, n)

	for _, bad := range []string{"", "6", "M", "6M", "X3", "MM3", "Md3", "M0", "M4", "P3"} {
		_, err := interval.ParseInterval(bad)
		assert.ErrorIs(t, err, interval.ErrBadInterval, "input %q", bad)
	}
}

func TestName_Semitones(t *testing.T) {
	cases := map[string]int{
		"P1": 0, "A1": 1, "m2": 1, "M2": 2, "m3": 3, "M3": 4,
		"P4": 5, "A4": 6, "d5": 6, "P5": 7, "m6": 8, "M6": 9,
		"m7": 10, "M7": 11, "P8": 12, "M9": 14, "AA4": 7, "dd5": 5,
	}
	for name, want := range cases {
		n, err := interval.ParseInterval(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, n.Semitones(), name)
	}
}

func TestName_Inversion(t *testing.T) {
	cases := map[string]string{
		"P1": "P8", "P8": "P1", "M6": "m3", "m3": "M6",
		"A4": "d5", "d5": "A4", "M7": "m2", "M9": "m7", "AA4": "dd5",
	}
	for name, want := range cases {
		n, err := interval.ParseInterval(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, n.Inversion().String(), "inversion of %s", name)
	}
}

func TestNewNamer_Validation(t *testing.T) {
	pentatonic, err := notation.NewEDO(
		map[string]int{"C": 0, "D": 2, "E": 4, "G": 7, "A": 9},
		map[string]int{"#": 1, "b": -1}, 12)
	require.NoError(t, err)
	_, err = interval.NewNamer(pentatonic)
	assert.ErrorIs(t, err, interval.ErrNotation, "seven letters required")

	noAccidentals, err := notation.NewEDO(
		map[string]int{"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11},
		nil, 12)
	require.NoError(t, err)
	_, err = interval.NewNamer(noAccidentals)
	assert.ErrorIs(t, err, interval.ErrNotation, "sharp and flat required")
}

func TestNamer_Interval(t *testing.T) {
	nm := interval.Standard()

	cases := []struct {
		note1, note2 string
		octaves      int
		dir          interval.Direction
		want         string
	}{
		{"C", "A", 0, interval.Up, "M6"},
		{"C", "A", 0, interval.Down, "m3"},
		{"C", "Eb", 0, interval.Up, "m3"},
		{"C", "F#", 0, interval.Up, "A4"},
		{"C", "Gb", 0, interval.Up, "d5"},
		{"D", "D", 0, interval.Up, "P1"},
		{"D", "D", 1, interval.Up, "P8"},
		{"C", "E", 1, interval.Up, "M10"},
		{"A", "C", 0, interval.Up, "m3"},
		{"B", "F", 0, interval.Up, "d5"},
	}
	for _, tc := range cases {
		got, err := nm.Interval(tc.note1, tc.note2, tc.octaves, tc.dir)
		require.NoError(t, err, "%s to %s", tc.note1, tc.note2)
		assert.Equal(t, tc.want, got, "%s to %s (+%d oct, %s)", tc.note1, tc.note2, tc.octaves, tc.dir)
	}

	_, err := nm.Interval("C", "A", -1, interval.Up)
	assert.ErrorIs(t, err, interval.ErrBadInterval)
	_, err = nm.Interval("C", "X", 0, interval.Up)
	assert.ErrorIs(t, err, notation.ErrSyntax)
}

func TestNamer_NoteAt(t *testing.T) {
	nm := interval.Standard()

	cases := []struct {
		note, name string
		dir        interval.Direction
		want       string
	}{
		{"C", "M6", interval.Up, "A"},
		{"C", "m3", interval.Down, "A"},
		{"C", "P1", interval.Up, "C"},
		{"C", "M3", interval.Up, "E"},
		{"E", "M3", interval.Up, "G#"},
		{"C", "M7", interval.Up, "B"},
		{"C", "m2", interval.Down, "B"},
		{"C", "M3", interval.Down, "Ab"},
		{"B", "d5", interval.Up, "F"},
	}
	for _, tc := range cases {
		got, err := nm.NoteAt(tc.note, tc.name, tc.dir)
		require.NoError(t, err, "%s %s %s", tc.name, tc.dir, tc.note)
		assert.Equal(t, tc.want, got, "%s %s from %s", tc.name, tc.dir, tc.note)
	}
}

func TestNamer_RoundTrip(t *testing.T) {
	nm := interval.Standard()

	for _, name := range []string{"m2", "M2", "m3", "M3", "P4", "P5", "m6", "M6", "m7", "M7"} {
		note, err := nm.NoteAt("C", name, interval.Up)
		require.NoError(t, err, name)
		back, err := nm.Interval("C", note, 0, interval.Up)
		require.NoError(t, err, name)
		assert.Equal(t, name, back, "round trip through %s", note)
	}
}

func TestNamer_Stack(t *testing.T) {
	nm := interval.Standard()

	triad, err := nm.Stack("C", []string{"M3", "m3"}, false, interval.Up, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E", "G"}, triad)

	fromRoot, err := nm.Stack("C", []string{"M3", "P5"}, true, interval.Up, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E", "G"}, fromRoot)

	mirrored, err := nm.Stack("C", []string{"M3", "m3"}, false, interval.Up, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E", "G", "E", "C"}, mirrored)

	_, err = nm.Stack("C", []string{"Q3"}, false, interval.Up, false)
	assert.ErrorIs(t, err, interval.ErrBadInterval)
}

func TestNamer_EnharmonicIntervals(t *testing.T) {
	nm := interval.Standard()

	same, err := nm.EnharmonicIntervals("A4", "d5")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = nm.EnharmonicIntervals("M3", "M3")
	require.NoError(t, err)
	assert.False(t, same, "identical names are not enharmonic")

	same, err = nm.EnharmonicIntervals("M3", "P4")
	require.NoError(t, err)
	assert.False(t, same)
}

func TestNamer_Solfege(t *testing.T) {
	nm := interval.SolfegeNamer()

	got, err := nm.Interval("do", "la", 0, interval.Up)
	require.NoError(t, err)
	assert.Equal(t, "M6", got)

	note, err := nm.NoteAt("do", "M6", interval.Up)
	require.NoError(t, err)
	assert.Equal(t, "la", note)
}
