package twelvetone

import (
	"fmt"
	"sort"

	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
	"github.com/SamuelHill/gomused/temperament"
)

// mustJust seeds a just system from one of the package ratio tables.
func mustJust(name string, notes map[string]pitch.Ratio) *temperament.JustSystem {
	j := temperament.NewJustSystem(name)
	if err := j.FromRatios(notes); err != nil {
		panic(err)
	}

	return j
}

// NewPtolemyDiatonic is Ptolemy's intense diatonic tuning on C.
func NewPtolemyDiatonic() *temperament.JustSystem {
	return mustJust("Ptolemy C", PtolemyDiatonicNotes)
}

// NewPtolemyChromatic is the twelve-degree Ptolemaic tuning on C.
func NewPtolemyChromatic() *temperament.JustSystem {
	return mustJust("Ptolemy 12 C", PtolemyChromaticNotes)
}

// NewPythagorean is the three-limit chromatic tuning on C.
func NewPythagorean() *temperament.JustSystem {
	return mustJust("Pythagorean C", PythagoreanNotes)
}

// NewPtolemyHEWM expands the Ptolemaic diatonic table under the HEWM
// accidentals and seeds a just system from the resulting tone row, giving
// a pitch class for every comma-shifted spelling. The HEWM '-' symbol
// collides with negative octave numbers, so the underlying notation
// reports a configuration warning, returned alongside the system.
func NewPtolemyHEWM() (*temperament.JustSystem, []string) {
	n, err := notation.NewJust(PtolemyDiatonicNotes, HEWM, true)
	if err != nil {
		panic(err)
	}
	row, err := n.ToneRow()
	if err != nil {
		panic(err)
	}

	j := temperament.NewJustSystem("Ptolemy HEWM")
	if err := j.FromToneRow(row); err != nil {
		panic(err)
	}

	return j, n.Warnings()
}

// NewPtolemyChromaticAt transposes the Ptolemaic chromatic tuning onto a
// new root: the twelve ratios keep their order but take the names of the
// chromatic degrees starting at the key, spelled under the bias. The root
// frequency passed to TuneInterval is unchanged, so the key's own class
// sits at 1/1.
func NewPtolemyChromaticAt(key string, bias notation.Bias) (*temperament.JustSystem, error) {
	chromatic := mustEDO(Alphabet, Accidentals, notation.WithoutOctaves())
	v, err := chromatic.Value(key)
	if err != nil {
		return nil, err
	}
	position := pitch.WrapSteps(v.Steps(), 12)

	// The twelve ratios in ascending order, one per chromatic degree.
	ratios := make([]pitch.Ratio, 0, len(PtolemyChromaticNotes))
	for _, r := range PtolemyChromaticNotes {
		ratios = append(ratios, r)
	}
	sort.Slice(ratios, func(i, j int) bool { return ratios[i].Cents() < ratios[j].Cents() })

	j := temperament.NewJustSystem(fmt.Sprintf("Ptolemy 12 %s", key))
	for degree, r := range ratios {
		name, err := chromatic.NoteFromValue(pitch.WrapSteps(position+degree, 12), bias)
		if err != nil {
			return nil, err
		}
		if err := j.AddRatio(name, r); err != nil {
			return nil, err
		}
	}

	return j, nil
}
