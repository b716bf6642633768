package fifths

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/pitch"
	"github.com/SamuelHill/gomused/twelvetone"
)

var (
	// ErrUnknownKey reports a key name outside the circle's tables.
	ErrUnknownKey = errors.New("fifths: key not in the circle")

	// ErrTooManyAccidentals reports a signature count beyond the seven
	// accidentals a key signature can carry.
	ErrTooManyAccidentals = errors.New("fifths: no key signature carries more than 7 accidentals")
)

// Config assembles the tables a Circle works from. Every field is
// required except Uppercase, which selects the display case for major
// keys and naturals.
type Config struct {
	Majors       map[string]int
	Minors       map[string]int
	OrderOfFlats []string
	Uppercase    bool
	SharpSymbol  string
	FlatSymbol   string
}

// Circle is an immutable circle of fifths over one notation.
type Circle struct {
	edo    *notation.EDO
	majors map[string]int
	minors map[string]int

	majorByCount map[int]string
	minorByCount map[int]string

	flatsOrder  []string
	sharpsOrder []string
	upper       bool
	sharpSym    string
	flatSym     string
}

// New validates the tables against the notation and builds a circle.
// Every key name must resolve in the notation and every count must fit
// in a signature.
func New(e *notation.EDO, cfg Config) (*Circle, error) {
	if len(cfg.Majors) == 0 || len(cfg.Minors) == 0 {
		return nil, fmt.Errorf("%w: empty key table", ErrUnknownKey)
	}
	if len(cfg.OrderOfFlats) != 7 {
		return nil, fmt.Errorf("fifths: order of flats needs 7 letters, got %d", len(cfg.OrderOfFlats))
	}
	if cfg.SharpSymbol == "" || cfg.FlatSymbol == "" {
		return nil, fmt.Errorf("fifths: sharp and flat symbols are required")
	}

	c := &Circle{
		edo:        e,
		majors:     copyTable(cfg.Majors),
		minors:     copyTable(cfg.Minors),
		flatsOrder: append([]string(nil), cfg.OrderOfFlats...),
		upper:      cfg.Uppercase,
		sharpSym:   cfg.SharpSymbol,
		flatSym:    cfg.FlatSymbol,
	}
	c.sharpsOrder = make([]string, 7)
	for i, letter := range c.flatsOrder {
		c.sharpsOrder[6-i] = letter
	}

	for _, table := range []map[string]int{c.majors, c.minors} {
		for key, count := range table {
			if count < -7 || count > 7 {
				return nil, fmt.Errorf("%w: key %q has count %d", ErrTooManyAccidentals, key, count)
			}
			if _, err := c.tonicClass(key); err != nil {
				return nil, err
			}
		}
	}
	c.majorByCount = invertTable(c.majors)
	c.minorByCount = invertTable(c.minors)

	return c, nil
}

// Standard is the circle over the seven-letter ASCII alphabet.
func Standard() *Circle {
	return mustCircle(twelvetone.Standard(), Config{
		Majors: DefaultMajors, Minors: DefaultMinors,
		OrderOfFlats: OrderOfFlats, Uppercase: true,
		SharpSymbol: "#", FlatSymbol: "b",
	})
}

// Unicode is the circle with typographic accidentals.
func Unicode() *Circle {
	return mustCircle(twelvetone.Unicode(), Config{
		Majors: UnicodeMajors, Minors: UnicodeMinors,
		OrderOfFlats: OrderOfFlats, Uppercase: true,
		SharpSymbol: "♯", FlatSymbol: "♭",
	})
}

// SolfegeCircle is the circle in fixed-do solfège, displayed lowercase.
func SolfegeCircle() *Circle {
	return mustCircle(twelvetone.SolfegeMap(), Config{
		Majors: SolfegeMajors, Minors: SolfegeMinors,
		OrderOfFlats: SolfegeOrderOfFlats, Uppercase: false,
		SharpSymbol: "#", FlatSymbol: "b",
	})
}

// SolfegeUnicode is the solfège circle with typographic accidentals.
func SolfegeUnicode() *Circle {
	return mustCircle(twelvetone.SolfegeUnicode(), Config{
		Majors: SolfegeUnicodeMajors, Minors: SolfegeUnicodeMinors,
		OrderOfFlats: SolfegeOrderOfFlats, Uppercase: false,
		SharpSymbol: "♯", FlatSymbol: "♭",
	})
}

func mustCircle(e *notation.EDO, cfg Config) *Circle {
	c, err := New(e, cfg)
	if err != nil {
		panic(err)
	}

	return c
}

func copyTable(t map[string]int) map[string]int {
	out := make(map[string]int, len(t))
	for k, v := range t {
		out[k] = v
	}

	return out
}

// invertTable maps counts back to key names; should two keys share a
// count, the lexicographically smaller name wins, keeping lookups
// deterministic.
func invertTable(t map[string]int) map[int]string {
	out := make(map[int]string, len(t))
	for key, count := range t {
		if have, ok := out[count]; !ok || key < have {
			out[count] = key
		}
	}

	return out
}

// signatureCount classifies a key and returns its signed count.
func (c *Circle) signatureCount(key string) (count int, major bool, err error) {
	if n, ok := c.majors[key]; ok {
		return n, true, nil
	}
	if n, ok := c.minors[key]; ok {
		return n, false, nil
	}

	return 0, false, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// tonicClass resolves a key name to its pitch class.
func (c *Circle) tonicClass(key string) (int, error) {
	v, err := c.edo.Value(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not resolve: %v", ErrUnknownKey, key, err)
	}

	return pitch.WrapSteps(v.Steps(), 12), nil
}

// display normalizes a note or key name to the circle's case, keeping a
// trailing flat symbol lowercase.
func (c *Circle) display(name string) string {
	if !c.upper {
		return strings.ToLower(name)
	}
	if len(name) > len(c.flatSym) && strings.HasSuffix(name, c.flatSym) {
		return strings.ToUpper(strings.TrimSuffix(name, c.flatSym)) + c.flatSym
	}

	return strings.ToUpper(name)
}

// Relative finds the key of the opposite mode sharing this key's
// signature: the relative minor of C is a.
func (c *Circle) Relative(key string) (string, error) {
	count, major, err := c.signatureCount(key)
	if err != nil {
		return "", err
	}
	other := c.minorByCount
	if !major {
		other = c.majorByCount
	}
	name, ok := other[count]
	if !ok {
		return "", fmt.Errorf("%w: no key of the opposite mode with %d accidentals", ErrUnknownKey, count)
	}

	return name, nil
}

// Parallel finds the key of the opposite mode sharing this key's tonic:
// the parallel minor of C is c. A spelling that matches the key's own is
// preferred over an enharmonic one, so Eb pairs with eb rather than d#;
// remaining ties go to the smaller signature.
func (c *Circle) Parallel(key string) (string, error) {
	_, major, err := c.signatureCount(key)
	if err != nil {
		return "", err
	}
	class, err := c.tonicClass(key)
	if err != nil {
		return "", err
	}

	other := c.minors
	if !major {
		other = c.majors
	}
	var candidates []string
	for name := range other {
		otherClass, err := c.tonicClass(name)
		if err != nil {
			return "", err
		}
		if otherClass == class {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no key of the opposite mode on that tonic", ErrUnknownKey)
	}

	lowered := strings.ToLower(key)
	sort.Slice(candidates, func(i, j int) bool {
		mi := strings.ToLower(candidates[i]) == lowered
		mj := strings.ToLower(candidates[j]) == lowered
		if mi != mj {
			return mi
		}
		ai, aj := abs(other[candidates[i]]), abs(other[candidates[j]])
		if ai != aj {
			return ai < aj
		}

		return candidates[i] < candidates[j]
	})

	return candidates[0], nil
}

// signature returns the accidental symbol and the letters it applies to.
func (c *Circle) signature(key string) (string, []string, error) {
	count, _, err := c.signatureCount(key)
	if err != nil {
		return "", nil, err
	}
	if count >= 0 {
		return c.sharpSym, c.sharpsOrder[:count], nil
	}

	return c.flatSym, c.flatsOrder[:-count], nil
}

// KeySignature lists the key's accidentals in the order they appear on a
// staff: KeySignature("D") is [F#, C#].
func (c *Circle) KeySignature(key string) ([]string, error) {
	sym, letters, err := c.signature(key)
	if err != nil {
		return nil, err
	}

	notes := make([]string, len(letters))
	for i, letter := range letters {
		notes[i] = c.display(letter + sym)
	}

	return notes, nil
}

// NotesInKey spells the seven notes of a key starting from its tonic.
func (c *Circle) NotesInKey(key string) ([]string, error) {
	sym, altered, err := c.signature(key)
	if err != nil {
		return nil, err
	}

	inSignature := make(map[string]bool, len(altered))
	for _, letter := range altered {
		inSignature[letter] = true
	}
	notes := make([]string, 0, 7)
	for _, letter := range c.flatsOrder {
		if inSignature[letter] {
			notes = append(notes, letter+sym)
		} else {
			notes = append(notes, letter)
		}
	}

	classes := make(map[string]int, len(notes))
	for _, note := range notes {
		class, err := c.tonicClass(note)
		if err != nil {
			return nil, err
		}
		classes[note] = class
	}
	sort.Slice(notes, func(i, j int) bool { return classes[notes[i]] < classes[notes[j]] })

	for i, note := range notes {
		notes[i] = c.display(note)
	}
	tonic := c.display(key)
	for i, note := range notes {
		if note == tonic {
			return append(notes[i:], notes[:i]...), nil
		}
	}

	return nil, fmt.Errorf("%w: tonic %q is not among the key's notes", ErrUnknownKey, key)
}

// NoteInKey reports whether a note, spelled in the circle's display
// case, belongs to the key.
func (c *Circle) NoteInKey(note, key string) (bool, error) {
	notes, err := c.NotesInKey(key)
	if err != nil {
		return false, err
	}
	for _, have := range notes {
		if have == note {
			return true, nil
		}
	}

	return false, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
