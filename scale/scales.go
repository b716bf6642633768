package scale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SamuelHill/gomused/interval"
	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
	"github.com/SamuelHill/gomused/twelvetone"
)

// ErrUnknownScale reports a scale name missing from the table.
var ErrUnknownScale = errors.New("scale: unknown scale name")

// namedScales maps scale names to step patterns. W, H and 3H expand to
// M2, m2 and A2; anything else is taken as a literal interval name. Step
// patterns only suit scales touching each letter once, so the jazz and
// pentatonic shapes carry explicit intervals.
var namedScales = map[string][]string{
	"major":              {"W", "W", "H", "W", "W", "W", "H"},
	"minor":              {"W", "H", "W", "W", "H", "W", "W"},
	"harmonic minor":     {"W", "H", "W", "W", "H", "3H", "H"},
	"harmonic major":     {"W", "W", "H", "W", "H", "3H", "H"},
	"melodic minor asc":  {"W", "H", "W", "W", "W", "W", "H"},
	"melodic minor desc": {"W", "W", "H", "W", "W", "H", "W"},

	"ionian":     {"W", "W", "H", "W", "W", "W", "H"},
	"dorian":     {"W", "H", "W", "W", "W", "H", "W"},
	"phrygian":   {"H", "W", "W", "W", "H", "W", "W"},
	"lydian":     {"W", "W", "W", "H", "W", "W", "H"},
	"mixolydian": {"W", "W", "H", "W", "W", "H", "W"},
	"aeolian":    {"W", "H", "W", "W", "H", "W", "W"},
	"locrian":    {"H", "W", "W", "H", "W", "W", "W"},

	"double harmonic":   {"H", "3H", "H", "W", "H", "3H", "H"},
	"hungarian minor":   {"W", "H", "3H", "H", "H", "3H", "H"},
	"hungarian major":   {"3H", "H", "W", "H", "W", "H", "W"},
	"gypsy":             {"W", "H", "3H", "H", "H", "W", "W"},
	"ukrainian dorian":  {"W", "H", "3H", "H", "W", "H", "W"},
	"phrygian dominant": {"H", "3H", "H", "W", "H", "W", "W"},

	"jazz minor":        {"W", "H", "W", "W", "W", "W", "H"},
	"blues":             {"m3", "W", "H", "A1", "m3", "W"},
	"bebop":             {"W", "W", "H", "W", "W", "H", "A1", "H"},
	"major bebop":       {"W", "W", "H", "W", "A1", "H", "W", "H"},
	"flamenco":          {"H", "3H", "H", "W", "H", "3H", "H"},
	"neapolitan minor":  {"H", "W", "W", "W", "H", "3H", "H"},
	"neapolitan major":  {"H", "W", "W", "W", "W", "W", "H"},

	"hirajoshi": {"M3", "W", "H", "M3", "H"},
	"in":        {"H", "M3", "W", "H", "M3"},
	"insen":     {"H", "M3", "W", "m3", "W"},
	"iwato":     {"H", "M3", "H", "M3", "W"},
	"yo":        {"m3", "W", "W", "m3", "W"},

	"persian":          {"H", "3H", "H", "H", "W", "3H", "H"},
	"enigmatic":        {"H", "3H", "W", "W", "W", "H", "H"},
	"harmonics":        {"m3", "A1", "H", "W", "W", "m3"},
	"acoustic":         {"W", "W", "W", "H", "W", "H", "W"},
	"augmented":        {"m3", "A1", "m3", "A1", "m3", "H"},
	"half diminished":  {"W", "H", "W", "H", "W", "W", "W"},
	"super locrian":    {"H", "W", "H", "W", "W", "W", "W"},
	"lydian augmented": {"W", "W", "W", "W", "H", "W", "H"},
	"major locrian":    {"W", "W", "H", "H", "W", "W", "W"},

	"octatonic whole":      {"W", "H", "W", "H", "W", "A1", "W", "H"},
	"octatonic half":       {"H", "W", "A1", "W", "H", "W", "H"},
	"prometheus":           {"W", "W", "W", "m3", "H", "W"},
	"tritone":              {"H", "3H", "W", "A1", "m3", "W"},
	"two semitone tritone": {"H", "A1", "M3", "H", "H", "M3"},
	"whole tone":           {"W", "W", "W", "W", "W", "W"},
}

// stepIntervals expands the step shorthand.
var stepIntervals = map[string]string{"W": "M2", "H": "m2", "3H": "A2"}

// ScaleNames lists the known scale names in sorted order.
func ScaleNames() []string {
	names := make([]string, 0, len(namedScales))
	for name := range namedScales {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Scales spells scales over a seven-letter 12-division notation.
type Scales struct {
	edo   *notation.EDO
	namer *interval.Namer
}

// New builds a scale speller; the notation must satisfy interval.NewNamer.
func New(e *notation.EDO) (*Scales, error) {
	namer, err := interval.NewNamer(e)
	if err != nil {
		return nil, err
	}

	return &Scales{edo: e, namer: namer}, nil
}

// Standard spells scales in the seven-letter ASCII alphabet.
func Standard() *Scales {
	s, err := New(twelvetone.Standard())
	if err != nil {
		panic(err)
	}

	return s
}

// Unicode spells scales with typographic accidentals.
func Unicode() *Scales {
	s, err := New(twelvetone.Unicode())
	if err != nil {
		panic(err)
	}

	return s
}

// SolfegeScales spells scales in fixed-do solfège.
func SolfegeScales() *Scales {
	s, err := New(twelvetone.SolfegeMap())
	if err != nil {
		panic(err)
	}

	return s
}

// Named walks a named scale shape from the tonic. Down walks the shape
// downward; mirrored reflects the result around its last note.
func (s *Scales) Named(name, tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	shape, ok := namedScales[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}

	return s.namer.Stack(tonic, expandSteps(shape), false, dir, mirrored)
}

// expandSteps turns W/H/3H tokens into interval names, passing explicit
// interval names through.
func expandSteps(shape []string) []string {
	out := make([]string, len(shape))
	for i, step := range shape {
		if name, ok := stepIntervals[step]; ok {
			out[i] = name
		} else {
			out[i] = step
		}
	}

	return out
}

// Chromatic spells all twelve degrees from the tonic under one bias,
// closing on the tonic's pitch class.
func (s *Scales) Chromatic(tonic string, bias notation.Bias, dir interval.Direction, mirrored bool) ([]string, error) {
	v, err := s.edo.Value(tonic)
	if err != nil {
		return nil, err
	}
	start := pitch.WrapSteps(v.Steps(), 12)

	classes := make([]int, 0, 13)
	for i := 0; i < 12; i++ {
		classes = append(classes, pitch.WrapSteps(start+i, 12))
	}
	classes = append(classes, start)
	if dir == interval.Down {
		for i, j := 0, len(classes)-1; i < j; i, j = i+1, j-1 {
			classes[i], classes[j] = classes[j], classes[i]
		}
	}

	names := make([]string, len(classes))
	for i, class := range classes {
		name, err := s.edo.Spell(pitch.StepValue(class), bias)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	if mirrored {
		names = interval.Mirror(names)
	}

	return names, nil
}

// Major walks the major scale from the tonic.
func (s *Scales) Major(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("major", tonic, dir, mirrored)
}

// Minor walks the natural minor scale from the tonic.
func (s *Scales) Minor(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("minor", tonic, dir, mirrored)
}

// HarmonicMinor walks the harmonic minor scale from the tonic.
func (s *Scales) HarmonicMinor(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("harmonic minor", tonic, dir, mirrored)
}

// MelodicMinor joins the ascending form to the descending form, which
// matches natural minor walked downward.
func (s *Scales) MelodicMinor(tonic string) ([]string, error) {
	up, err := s.Named("melodic minor asc", tonic, interval.Up, false)
	if err != nil {
		return nil, err
	}
	down, err := s.Named("melodic minor desc", tonic, interval.Down, false)
	if err != nil {
		return nil, err
	}

	return append(up, down[1:]...), nil
}

// Ionian walks the ionian mode, identical to the major scale.
func (s *Scales) Ionian(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("ionian", tonic, dir, mirrored)
}

// Dorian walks the dorian mode from the tonic.
func (s *Scales) Dorian(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("dorian", tonic, dir, mirrored)
}

// Phrygian walks the phrygian mode from the tonic.
func (s *Scales) Phrygian(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("phrygian", tonic, dir, mirrored)
}

// Lydian walks the lydian mode from the tonic.
func (s *Scales) Lydian(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("lydian", tonic, dir, mirrored)
}

// Mixolydian walks the mixolydian mode from the tonic.
func (s *Scales) Mixolydian(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("mixolydian", tonic, dir, mirrored)
}

// Aeolian walks the aeolian mode, identical to natural minor.
func (s *Scales) Aeolian(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("aeolian", tonic, dir, mirrored)
}

// Locrian walks the locrian mode from the tonic.
func (s *Scales) Locrian(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return s.Named("locrian", tonic, dir, mirrored)
}
