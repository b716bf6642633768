package interval

import (
	"fmt"
	"strings"

	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
	"github.com/SamuelHill/gomused/twelvetone"
)

// Direction orients an interval relative to its first note.
type Direction uint8

const (
	Up Direction = iota
	Down
)

// String reports "up" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}

	return "up"
}

// Namer names intervals over a seven-letter 12-division notation.
type Namer struct {
	edo      *notation.EDO
	letters  []string
	sharpSym string
	flatSym  string
}

// NewNamer validates that the notation can support interval naming:
// exactly seven letters over 12 divisions, with single-step sharp and
// flat accidentals for spelling adjusted notes.
func NewNamer(e *notation.EDO) (*Namer, error) {
	if e.Divisions() != 12 {
		return nil, fmt.Errorf("%w: need 12 divisions, got %d", ErrNotation, e.Divisions())
	}
	letters := e.Notes()
	if len(letters) != scaleOctave {
		return nil, fmt.Errorf("%w: need %d letters, got %d", ErrNotation, scaleOctave, len(letters))
	}

	var sharp, flat string
	for _, sym := range e.Accidentals() {
		v, _ := e.AccidentalValue(sym)
		if v.Kind() != pitch.StepKind {
			continue
		}
		switch v.Steps() {
		case 1:
			if sharp == "" {
				sharp = sym
			}
		case -1:
			if flat == "" {
				flat = sym
			}
		}
	}
	if sharp == "" || flat == "" {
		return nil, fmt.Errorf("%w: need single-step sharp and flat accidentals", ErrNotation)
	}

	return &Namer{edo: e, letters: letters, sharpSym: sharp, flatSym: flat}, nil
}

// Standard names intervals over the seven-letter ASCII alphabet.
func Standard() *Namer {
	return mustNamer(twelvetone.Standard())
}

// Unicode names intervals over the typographic-accidental alphabet.
func Unicode() *Namer {
	return mustNamer(twelvetone.Unicode())
}

// SolfegeNamer names intervals over the fixed-do solfège alphabet.
func SolfegeNamer() *Namer {
	return mustNamer(twelvetone.SolfegeMap())
}

func mustNamer(e *notation.EDO) *Namer {
	n, err := NewNamer(e)
	if err != nil {
		panic(err)
	}

	return n
}

// Interval names the distance from note1 up to note2, widened by whole
// octaves. Down reports the inversion, the name of the distance heard
// when the second note sounds below the first.
func (nm *Namer) Interval(note1, note2 string, octaves int, dir Direction) (string, error) {
	if octaves < 0 {
		return "", fmt.Errorf("%w: octave widening must be non-negative, got %d", ErrBadInterval, octaves)
	}
	v1, err := nm.stepValue(note1)
	if err != nil {
		return "", err
	}
	v2, err := nm.stepValue(note2)
	if err != nil {
		return "", err
	}

	span := pitch.WrapSteps(v2-v1, 12) + octaves*12
	name, err := nm.nameSpan(note1, note2, span)
	if err != nil {
		return "", err
	}
	if dir == Down {
		name = name.Inversion()
	}

	return name.String(), nil
}

// nameSpan names a non-negative semitone span between two spelled notes.
func (nm *Namer) nameSpan(note1, note2 string, span int) (Name, error) {
	octaves := span / 12
	simple, err := nm.simpleName(note1, note2, span-octaves*12)
	if err != nil {
		return Name{}, err
	}
	simple.Degree += octaves * scaleOctave

	return simple, nil
}

// simpleName names a span inside one octave. The degree comes from the
// letter distance; the quality from how the span compares to the degree's
// perfect or major/minor spans, with A and d stacking by the excess.
func (nm *Namer) simpleName(note1, note2 string, span int) (Name, error) {
	degree, err := nm.letterDegree(note1, note2)
	if err != nil {
		return Name{}, err
	}

	if base, perfect := perfectDegrees[degree]; perfect {
		switch {
		case span == base:
			return Name{Quality: 'P', Count: 1, Degree: degree}, nil
		case span > base:
			return Name{Quality: 'A', Count: span - base, Degree: degree}, nil
		default:
			return Name{Quality: 'd', Count: base - span, Degree: degree}, nil
		}
	}

	major, minor := majorDegrees[degree], minorDegrees[degree]
	switch {
	case span > major:
		return Name{Quality: 'A', Count: span - major, Degree: degree}, nil
	case span == major:
		return Name{Quality: 'M', Count: 1, Degree: degree}, nil
	case span == minor:
		return Name{Quality: 'm', Count: 1, Degree: degree}, nil
	default:
		return Name{Quality: 'd', Count: minor - span, Degree: degree}, nil
	}
}

// letterDegree is the 1-based scale degree between two notes' letters,
// ignoring accidentals and octaves.
func (nm *Namer) letterDegree(note1, note2 string) (int, error) {
	i1, err := nm.letterIndex(note1)
	if err != nil {
		return 0, err
	}
	i2, err := nm.letterIndex(note2)
	if err != nil {
		return 0, err
	}

	switch {
	case i1 == i2:
		return 1, nil
	case i1 < i2:
		return i2 - i1 + 1, nil
	default:
		return 8 - (i1 - i2), nil
	}
}

func (nm *Namer) letterIndex(note string) (int, error) {
	p, err := nm.edo.Parse(note)
	if err != nil {
		return 0, err
	}
	for i, letter := range nm.letters {
		if letter == p.Name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q is not a letter of this notation", ErrNotation, p.Name)
}

func (nm *Namer) stepValue(note string) (int, error) {
	v, err := nm.edo.Value(note)
	if err != nil {
		return 0, err
	}
	if v.Kind() != pitch.StepKind {
		return 0, fmt.Errorf("%w: %q is not step-valued", ErrNotation, note)
	}

	return v.Steps(), nil
}

// Inversion flips an interval name within one octave.
func (nm *Namer) Inversion(name string) (string, error) {
	n, err := ParseInterval(name)
	if err != nil {
		return "", err
	}

	return n.Inversion().String(), nil
}

// Semitones measures an interval name in chromatic steps.
func (nm *Namer) Semitones(name string) (int, error) {
	n, err := ParseInterval(name)
	if err != nil {
		return 0, err
	}

	return n.Semitones(), nil
}

// EnharmonicIntervals reports whether two interval names span the same
// number of semitones under different spellings, as A4 and d5 do.
func (nm *Namer) EnharmonicIntervals(name1, name2 string) (bool, error) {
	n1, err := ParseInterval(name1)
	if err != nil {
		return false, err
	}
	n2, err := ParseInterval(name2)
	if err != nil {
		return false, err
	}

	return n1.Semitones() == n2.Semitones() && n1.String() != n2.String(), nil
}

// NoteAt walks from a note by an interval: the letter moves by the degree
// and the leftover chromatic distance is spelled with stacked sharps or
// flats on the landing letter.
func (nm *Namer) NoteAt(note, name string, dir Direction) (string, error) {
	n, err := ParseInterval(name)
	if err != nil {
		return "", err
	}
	pos, err := nm.letterIndex(note)
	if err != nil {
		return "", err
	}
	value, err := nm.stepValue(note)
	if err != nil {
		return "", err
	}

	span := n.Semitones() - n.octaves()*12
	steps := n.Degree - 1
	var target int
	if dir == Up {
		target = pos + steps
	} else {
		target = pos - steps
	}
	letter := nm.letters[pitch.WrapSteps(target, scaleOctave)]
	letterValue, _ := nm.edo.NoteValue(letter)

	var adjust int
	if dir == Up {
		adjust = span - pitch.WrapSteps(letterValue.Steps()-value, 12)
	} else {
		adjust = pitch.WrapSteps(value-letterValue.Steps(), 12) - span
	}
	if adjust == 0 {
		return letter, nil
	}
	sym := nm.sharpSym
	if adjust < 0 {
		sym = nm.flatSym
		adjust = -adjust
	}

	return letter + strings.Repeat(sym, adjust), nil
}

// Stack walks an interval list into a note sequence starting at the
// tonic. fromRoot measures every interval from the tonic instead of the
// previous note; mirrored reflects the result around its last note.
func (nm *Namer) Stack(tonic string, names []string, fromRoot bool, dir Direction, mirrored bool) ([]string, error) {
	if _, err := nm.edo.Parse(tonic); err != nil {
		return nil, err
	}

	notes := make([]string, 1, len(names)+1)
	notes[0] = tonic
	for _, name := range names {
		from := notes[len(notes)-1]
		if fromRoot {
			from = tonic
		}
		next, err := nm.NoteAt(from, name, dir)
		if err != nil {
			return nil, err
		}
		notes = append(notes, next)
	}
	if mirrored {
		notes = Mirror(notes)
	}

	return notes, nil
}

// Mirror reflects a note sequence around its final note: C E G becomes
// C E G E C.
func Mirror(notes []string) []string {
	out := make([]string, 0, 2*len(notes)-1)
	out = append(out, notes[:len(notes)-1]...)
	for i := len(notes) - 1; i >= 0; i-- {
		out = append(out, notes[i])
	}

	return out
}
