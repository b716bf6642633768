package twelvetone

import (
	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/temperament"
)

// MidiTuning is the MIDI tuning standard: key 69 (A above middle C)
// pinned to 440 Hz.
var MidiTuning = temperament.Standard{Key: 69, Frequency: 440}

// MidiStandard is the 12-EDO equal temperament tuned to the MIDI
// standard, seeded with every built-in chromatic spelling so letter,
// typographic and solfège names all resolve to the same pitch classes.
//
// MIDI counts key 0 as the C a full octave below scientific C0, so A
// needs five MIDI octaves (9 + 5·12 = 69) to reach A4. ScientificOctave
// folds that offset in.
type MidiStandard struct {
	*temperament.EqualTemperament
}

// NewMidiStandard builds the MIDI temperament from the four built-in
// chromatic maps.
func NewMidiStandard() *MidiStandard {
	e, err := temperament.NewEqualTemperament("Midi", 12)
	if err != nil {
		panic(err)
	}
	for _, chromatic := range []*notation.EDO{Standard(), Unicode(), SolfegeMap(), SolfegeUnicode()} {
		row, err := chromatic.ToneRow()
		if err != nil {
			panic(err)
		}
		if err := e.FromToneRow(row); err != nil {
			panic(err)
		}
	}

	return &MidiStandard{EqualTemperament: e}
}

// Tune converts a note name at a MIDI octave to a frequency in Hz.
// Octave 5 holds A440.
func (m *MidiStandard) Tune(name string, octave int) (float64, error) {
	return m.TuneStandard(name, MidiTuning, octave)
}

// ScientificOctave tunes using scientific pitch notation octaves, where
// A4 is 440 Hz.
func (m *MidiStandard) ScientificOctave(name string, octave int) (float64, error) {
	return m.Tune(name, octave+1)
}
