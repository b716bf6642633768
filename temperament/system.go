package temperament

import (
	"fmt"
	"sort"

	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
)

// System is a named, cents-ordered collection of pitch classes. Inserting
// a class that lands on an occupied position merges its names into the
// resident class instead of adding a second entry.
type System struct {
	name    string
	classes []*PitchClass
}

// NewSystem builds an empty tuning system.
func NewSystem(name string) *System {
	return &System{name: name}
}

// Name returns the system's name.
func (s *System) Name() string { return s.name }

// Len reports the number of distinct pitch classes.
func (s *System) Len() int { return len(s.classes) }

// Classes returns the pitch classes in ascending cents order. The slice is
// a copy; the classes themselves are shared.
func (s *System) Classes() []*PitchClass {
	return append([]*PitchClass(nil), s.classes...)
}

// Add inserts a pitch class. A class occupying the same position as a
// resident one contributes its names as alternates and is otherwise
// dropped. A name already claimed by a different position is
// ErrDuplicateName.
func (s *System) Add(pc *PitchClass) error {
	for _, have := range s.classes {
		if sameClass(have, pc) {
			have.addName(pc.names)
			return nil
		}
	}
	for _, name := range pc.names {
		if _, ok := s.Class(name); ok {
			return fmt.Errorf("%w: %q names a different pitch class", ErrDuplicateName, name)
		}
	}

	s.classes = append(s.classes, pc)
	sort.SliceStable(s.classes, func(i, j int) bool {
		return s.classes[i].cents < s.classes[j].cents
	})

	return nil
}

// AddCents inserts a general pitch class at raw cents above the root.
func (s *System) AddCents(name string, cents float64) error {
	return s.Add(NewPitchClass(name, cents))
}

// FromCents inserts one general pitch class per table entry, in ascending
// cents order with a name tie-break so map iteration order never shows.
func (s *System) FromCents(notes map[string]float64) error {
	names := make([]string, 0, len(notes))
	for name := range notes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if notes[names[i]] != notes[names[j]] {
			return notes[names[i]] < notes[names[j]]
		}

		return names[i] < names[j]
	})

	for _, name := range names {
		if err := s.AddCents(name, notes[name]); err != nil {
			return err
		}
	}

	return nil
}

// Class finds the pitch class carrying a name, primary or alternate.
func (s *System) Class(name string) (*PitchClass, bool) {
	for _, pc := range s.classes {
		for _, have := range pc.names {
			if have == name {
				return pc, true
			}
		}
	}

	return nil, false
}

// TuneInterval tunes a named class against a root frequency.
func (s *System) TuneInterval(name string, root float64, octave int) (float64, error) {
	pc, ok := s.Class(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}

	return pc.TuneInterval(root, octave), nil
}

// JustSystem is a System whose classes are frequency ratios; spellings of
// octave-equivalent ratios merge into one class.
type JustSystem struct {
	*System
}

// NewJustSystem builds an empty just-intonation system.
func NewJustSystem(name string) *JustSystem {
	return &JustSystem{System: NewSystem(name)}
}

// AddRatio inserts a just pitch class.
func (j *JustSystem) AddRatio(name string, r pitch.Ratio) error {
	pc, err := NewJustPitchClass(name, r)
	if err != nil {
		return err
	}

	return j.Add(pc)
}

// FromRatios inserts one just pitch class per table entry, ordered by
// cents with a name tie-break.
func (j *JustSystem) FromRatios(notes map[string]pitch.Ratio) error {
	names := make([]string, 0, len(notes))
	for name := range notes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := notes[names[i]].Cents(), notes[names[j]].Cents()
		if ci != cj {
			return ci < cj
		}

		return names[i] < names[j]
	})

	for _, name := range names {
		if err := j.AddRatio(name, notes[name]); err != nil {
			return err
		}
	}

	return nil
}

// FromToneRow seeds the system from a notation's tone row; every alias
// must be ratio-valued.
func (j *JustSystem) FromToneRow(row []notation.Alias) error {
	for _, a := range row {
		if a.Value.Kind() != pitch.RatioKind {
			return fmt.Errorf("%w: alias %q is not ratio-valued", ErrConfig, a.Name)
		}
		if err := j.AddRatio(a.Name, a.Value.Ratio()); err != nil {
			return err
		}
	}

	return nil
}

// GeneralTemperament is a System whose positions are multiples of one
// fixed step size in cents, as in the Carlos alpha and beta scales.
type GeneralTemperament struct {
	*System

	stepSize float64
}

// NewGeneralTemperament builds an empty system with the given step size.
func NewGeneralTemperament(name string, stepSize float64) (*GeneralTemperament, error) {
	if stepSize <= 0 {
		return nil, fmt.Errorf("%w: step size must be positive, got %g", ErrConfig, stepSize)
	}

	return &GeneralTemperament{System: NewSystem(name), stepSize: stepSize}, nil
}

// StepSize reports the step size in cents.
func (g *GeneralTemperament) StepSize() float64 { return g.stepSize }

// AddStep inserts a general pitch class at steps·stepSize cents.
func (g *GeneralTemperament) AddStep(name string, steps float64) error {
	return g.AddCents(name, steps*g.stepSize)
}

// EqualTemperament is a GeneralTemperament whose step is 1200/divisions
// cents and whose classes are equal pitch classes, so it can tune against
// an absolute reference standard.
type EqualTemperament struct {
	*GeneralTemperament

	divisions int
}

// NewEqualTemperament builds an empty N-division equal temperament.
func NewEqualTemperament(name string, divisions int) (*EqualTemperament, error) {
	if divisions <= 0 {
		return nil, fmt.Errorf("%w: division count must be positive, got %d", ErrConfig, divisions)
	}
	general, err := NewGeneralTemperament(name, 1200.0/float64(divisions))
	if err != nil {
		return nil, err
	}

	return &EqualTemperament{GeneralTemperament: general, divisions: divisions}, nil
}

// Divisions reports the octave division count.
func (e *EqualTemperament) Divisions() int { return e.divisions }

// AddDegree inserts an equal pitch class at a division within the octave.
func (e *EqualTemperament) AddDegree(name string, division int) error {
	pc, err := NewEqualPitchClass(name, division, e.divisions)
	if err != nil {
		return err
	}

	return e.Add(pc)
}

// FromToneRow seeds the temperament from a notation's tone row; every
// alias must be step-valued. Seeding from several rows in turn merges the
// alternate spellings each row contributes.
func (e *EqualTemperament) FromToneRow(row []notation.Alias) error {
	for _, a := range row {
		if a.Value.Kind() != pitch.StepKind {
			return fmt.Errorf("%w: alias %q is not step-valued", ErrConfig, a.Name)
		}
		if err := e.AddDegree(a.Name, a.Value.Steps()); err != nil {
			return err
		}
	}

	return nil
}

// TuneStandard tunes a named class against a reference standard.
func (e *EqualTemperament) TuneStandard(name string, std Standard, octave int) (float64, error) {
	pc, ok := e.Class(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}

	return pc.TuneStandard(std, octave)
}
