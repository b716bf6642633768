package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Quality tables: semitone spans per scale degree within one octave.
var (
	perfectDegrees = map[int]int{1: 0, 4: 5, 5: 7}
	majorDegrees   = map[int]int{2: 2, 3: 4, 6: 9, 7: 11}
	minorDegrees   = map[int]int{2: 1, 3: 3, 6: 8, 7: 10}
)

// scaleOctave is the number of letter degrees in one octave.
const scaleOctave = 7

// Name is a parsed interval name: a quality character, how many times it
// repeats (only A and d stack) and the scale degree.
type Name struct {
	Quality byte
	Count   int
	Degree  int
}

// ParseInterval splits an interval name into its quality run and degree,
// enforcing the grammar: one of P/M/m/A/d (A and d stackable), then
// digits.
func ParseInterval(name string) (Name, error) {
	if name == "" {
		return Name{}, fmt.Errorf("%w: empty name", ErrBadInterval)
	}

	i := 0
	for i < len(name) && !isDigit(name[i]) {
		i++
	}
	quality, digits := name[:i], name[i:]
	if quality == "" || digits == "" {
		return Name{}, fmt.Errorf("%w: %q needs a quality then a degree", ErrBadInterval, name)
	}

	q := quality[0]
	if strings.Count(quality, string(q)) != len(quality) {
		return Name{}, fmt.Errorf("%w: %q mixes qualities", ErrBadInterval, name)
	}
	switch q {
	case 'A', 'd':
	case 'P', 'M', 'm':
		if len(quality) > 1 {
			return Name{}, fmt.Errorf("%w: %q quality does not stack", ErrBadInterval, name)
		}
	default:
		return Name{}, fmt.Errorf("%w: %q quality must be one of P M m A d", ErrBadInterval, name)
	}

	degree, err := strconv.Atoi(digits)
	if err != nil || degree < 1 {
		return Name{}, fmt.Errorf("%w: %q degree must be a positive number", ErrBadInterval, name)
	}

	n := Name{Quality: q, Count: len(quality), Degree: degree}
	simple := n.simpleDegree()
	if _, perfect := perfectDegrees[simple]; perfect {
		if q == 'M' || q == 'm' {
			return Name{}, fmt.Errorf("%w: degree %d is perfect, not major/minor", ErrBadInterval, degree)
		}
	} else if q == 'P' {
		return Name{}, fmt.Errorf("%w: degree %d is not a perfect degree", ErrBadInterval, degree)
	}

	return n, nil
}

// String reassembles the canonical spelling.
func (n Name) String() string {
	return strings.Repeat(string(n.Quality), n.Count) + strconv.Itoa(n.Degree)
}

// octaves reports how many whole octaves the degree spans.
func (n Name) octaves() int { return (n.Degree - 1) / scaleOctave }

// simpleDegree reduces the degree to 1..7.
func (n Name) simpleDegree() int { return n.Degree - n.octaves()*scaleOctave }

// Semitones measures the name in chromatic steps: the degree's base span
// adjusted by stacked augmentations or diminutions, plus 12 per octave.
func (n Name) Semitones() int {
	simple := n.simpleDegree()
	base, perfect := perfectDegrees[simple]
	if !perfect {
		if n.Quality == 'A' || n.Quality == 'M' {
			base = majorDegrees[simple]
		} else {
			base = minorDegrees[simple]
		}
	}
	switch n.Quality {
	case 'A':
		base += n.Count
	case 'd':
		base -= n.Count
	}

	return base + n.octaves()*12
}

// Inversion flips the name within one octave: degrees sum to 9, P stays,
// M and m swap, A and d swap. Compound intervals invert to their simple
// form; a plain octave inverts to the unison.
func (n Name) Inversion() Name {
	simple := n.simpleDegree()
	if simple == 1 && n.octaves() >= 1 {
		simple = 8
	}

	quality := n.Quality
	switch quality {
	case 'A':
		quality = 'd'
	case 'd':
		quality = 'A'
	case 'M':
		quality = 'm'
	case 'm':
		quality = 'M'
	}

	return Name{Quality: quality, Count: n.Count, Degree: 9 - simple}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
