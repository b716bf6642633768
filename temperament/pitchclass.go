package temperament

import (
	"fmt"
	"math"

	"github.com/SamuelHill/gomused/pitch"
)

// classKind tags the pitch-class flavor, which decides how two classes are
// judged identical when a system merges alternate names.
type classKind uint8

const (
	generalClass classKind = iota
	equalClass
	justClass
)

// PitchClass is one position above a tuning system's root. It accumulates
// every name that lands on the position; the first name is primary.
type PitchClass struct {
	names []string
	cents float64

	kind      classKind
	division  int
	divisions int
	ratio     pitch.Ratio
}

// NewPitchClass builds a general pitch class from raw cents above the root.
func NewPitchClass(name string, cents float64) *PitchClass {
	return &PitchClass{names: []string{name}, cents: cents}
}

// NewEqualPitchClass builds a pitch class at a division within an
// N-division octave; its cents are division·1200/divisions.
func NewEqualPitchClass(name string, division, divisions int) (*PitchClass, error) {
	if divisions <= 0 {
		return nil, fmt.Errorf("%w: division count must be positive, got %d", ErrConfig, divisions)
	}

	return &PitchClass{
		names:     []string{name},
		cents:     float64(division) * (1200.0 / float64(divisions)),
		kind:      equalClass,
		division:  division,
		divisions: divisions,
	}, nil
}

// NewJustPitchClass builds a pitch class from a frequency ratio.
func NewJustPitchClass(name string, r pitch.Ratio) (*PitchClass, error) {
	rr, err := pitch.NewRatio(r.Num, r.Den)
	if err != nil {
		return nil, fmt.Errorf("%w: pitch class %q: %v", ErrConfig, name, err)
	}

	return &PitchClass{
		names: []string{name},
		cents: rr.Cents(),
		kind:  justClass,
		ratio: rr,
	}, nil
}

// Name returns the primary (first-inserted) name.
func (pc *PitchClass) Name() string { return pc.names[0] }

// Names returns every name on this class, primary first.
func (pc *PitchClass) Names() []string {
	return append([]string(nil), pc.names...)
}

// Cents reports the position above the root.
func (pc *PitchClass) Cents() float64 { return pc.cents }

// Ratio returns the frequency ratio of a just class; ok is false for the
// other flavors.
func (pc *PitchClass) Ratio() (pitch.Ratio, bool) {
	return pc.ratio, pc.kind == justClass
}

// Division returns the octave division of an equal class; ok is false for
// the other flavors.
func (pc *PitchClass) Division() (int, bool) {
	return pc.division, pc.kind == equalClass
}

// TuneInterval converts the class to a frequency relative to a root
// frequency: 2^octave · root · 2^(cents/1200).
func (pc *PitchClass) TuneInterval(root float64, octave int) float64 {
	return math.Pow(2, float64(octave)) * root * math.Pow(2, pc.cents/1200.0)
}

// Standard is a tuning reference: an absolute key number pinned to a
// frequency, such as MIDI's key 69 at 440 Hz.
type Standard struct {
	Key       int
	Frequency float64
}

// TuneStandard converts an equal pitch class to a frequency by its
// distance in divisions from the reference key. Only equal classes carry
// the absolute division needed for this; other flavors report ErrConfig.
func (pc *PitchClass) TuneStandard(std Standard, octave int) (float64, error) {
	if pc.kind != equalClass {
		return 0, fmt.Errorf("%w: %q is not an equal-division pitch class", ErrConfig, pc.Name())
	}
	if std.Frequency <= 0 {
		return 0, fmt.Errorf("%w: reference frequency must be positive, got %g", ErrConfig, std.Frequency)
	}

	key := pc.division + octave*pc.divisions

	return math.Pow(2, float64(key-std.Key)/float64(pc.divisions)) * std.Frequency, nil
}

// addName records an alternate spelling, skipping names already present.
func (pc *PitchClass) addName(names []string) {
	for _, name := range names {
		known := false
		for _, have := range pc.names {
			if have == name {
				known = true
				break
			}
		}
		if !known {
			pc.names = append(pc.names, name)
		}
	}
}

// sameClass reports whether two classes occupy the same position: equal
// classes by division, just classes by octave-equivalent ratio, anything
// else by exact cents.
func sameClass(a, b *PitchClass) bool {
	if a.kind == justClass && b.kind == justClass {
		return a.ratio.Equivalent(b.ratio)
	}
	if a.kind == equalClass && b.kind == equalClass {
		return a.division == b.division
	}

	return a.cents == b.cents
}
