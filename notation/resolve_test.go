package notation_test

import (
	"testing"

	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_StepsWithOctaves checks the common 12-EDO scenario: octave
// scaling by the division count in the standard alphabet.
func TestResolve_StepsWithOctaves(t *testing.T) {
	n := stdNotation(t)

	assert.Equal(t, pitch.StepValue(48), mustValue(t, n, "C4"))
	assert.Equal(t, pitch.StepValue(34), mustValue(t, n, "Bb3"))
	assert.Equal(t, pitch.StepValue(1), mustValue(t, n, "C#"))
	assert.Equal(t, pitch.StepValue(1), mustValue(t, n, "Db"))
	assert.Equal(t, pitch.StepValue(-24), mustValue(t, n, "C-2"))
}

// TestResolve_StepsWrapWithoutOctaves checks modular wrapping when
// divisions are configured but octave tracking is off.
func TestResolve_StepsWrapWithoutOctaves(t *testing.T) {
	n := stdNotation(t, notation.WithoutOctaves())

	assert.Equal(t, pitch.StepValue(0), mustValue(t, n, "B#"), "11+1 wraps to 0")
	assert.Equal(t, pitch.StepValue(11), mustValue(t, n, "Cb"), "0-1 wraps to 11")
}

// TestResolve_StepsRawWithoutDivisions checks that bare step tables sum
// without wrapping or octave scaling.
func TestResolve_StepsRawWithoutDivisions(t *testing.T) {
	n, err := notation.New(stdNotes(), notation.WithAccidentals(stdAccidentals()))
	require.NoError(t, err)

	assert.Equal(t, pitch.StepValue(-1), mustValue(t, n, "Cb"))
	assert.Equal(t, pitch.StepValue(12), mustValue(t, n, "B#"))
}

// TestResolve_Cents checks the float domain: summation plus 1200 per octave.
func TestResolve_Cents(t *testing.T) {
	notes := map[string]pitch.Value{"C": pitch.CentValue(0), "G": pitch.CentValue(700)}
	acc := map[string]pitch.Value{"+": pitch.CentValue(50), "-": pitch.CentValue(-50)}
	n, err := notation.New(notes, notation.WithAccidentals(acc))
	require.NoError(t, err)

	v := mustValue(t, n, "G+1")
	assert.Equal(t, pitch.CentKind, v.Kind())
	assert.InDelta(t, 1950.0, v.Cents(), 1e-9)
}

// TestResolve_Ratios checks ratio multiplication, octave powers of two and
// lowest-terms normalization.
func TestResolve_Ratios(t *testing.T) {
	notes := map[string]pitch.Ratio{
		"C": {Num: 1, Den: 1},
		"G": {Num: 3, Den: 2},
	}
	acc := map[string]pitch.Ratio{
		"#": {Num: 2187, Den: 2048},
		"b": {Num: 2048, Den: 2187},
	}
	j, err := notation.NewJust(notes, acc, false)
	require.NoError(t, err)

	v := mustValue(t, j.Notation, "G#")
	assert.Equal(t, pitch.Ratio{Num: 6561, Den: 4096}, v.Ratio(), "3/2 · 2187/2048 in lowest terms")

	v = mustValue(t, j.Notation, "G1")
	assert.Equal(t, pitch.Ratio{Num: 3, Den: 1}, v.Ratio(), "one octave doubles the ratio")

	v = mustValue(t, j.Notation, "G-1")
	assert.Equal(t, pitch.Ratio{Num: 3, Den: 4}, v.Ratio(), "a negative octave halves the ratio")
}

// TestResolve_MixedDomainFallsBackToCents layers a cents accidental onto a
// ratio table and expects a cents result.
func TestResolve_MixedDomainFallsBackToCents(t *testing.T) {
	third, err := pitch.RatioValue(5, 4)
	require.NoError(t, err)
	notes := map[string]pitch.Value{"E": third}
	acc := map[string]pitch.Value{"+": pitch.CentValue(10)}
	n, err := notation.New(notes, notation.WithAccidentals(acc))
	require.NoError(t, err)

	v := mustValue(t, n, "E+")
	require.Equal(t, pitch.CentKind, v.Kind())
	assert.InDelta(t, 396.31, v.Cents(), 0.01, "5/4 in cents plus 10")
}

// TestResolve_MixedDomainNeedsDivisions verifies ErrDomain when a step
// value cannot be projected to cents.
func TestResolve_MixedDomainNeedsDivisions(t *testing.T) {
	notes := map[string]pitch.Value{"C": pitch.StepValue(0), "D": pitch.StepValue(2)}
	acc := map[string]pitch.Value{"+": pitch.CentValue(50)}
	n, err := notation.New(notes, notation.WithAccidentals(acc))
	require.NoError(t, err)

	_, err = n.Value("D+")
	assert.ErrorIs(t, err, notation.ErrDomain)
}

// TestResolve_OctaveAdditivity checks that octave offsets compose: two
// octaves above C4 is C6.
func TestResolve_OctaveAdditivity(t *testing.T) {
	n := stdNotation(t)

	c4 := mustValue(t, n, "C4")
	c6 := mustValue(t, n, "C6")
	assert.Equal(t, c6, pitch.StepValue(c4.Steps()+12*2))

	cents4, err := c4.ToCents(12)
	require.NoError(t, err)
	cents6, err := c6.ToCents(12)
	require.NoError(t, err)
	assert.InDelta(t, cents6, cents4+1200.0*2, 1e-9)
}

// TestEnharmonic verifies value equality and its symmetry.
func TestEnharmonic(t *testing.T) {
	n := stdNotation(t)

	ab, err := n.Enharmonic("C#", "Db")
	require.NoError(t, err)
	ba, err := n.Enharmonic("Db", "C#")
	require.NoError(t, err)
	assert.True(t, ab)
	assert.Equal(t, ab, ba, "enharmonic comparison is symmetric")

	ne, err := n.Enharmonic("C#", "D")
	require.NoError(t, err)
	assert.False(t, ne)
}
