package scale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SamuelHill/gomused/interval"
	"github.com/SamuelHill/gomused/notation"
	"github.com/SamuelHill/gomused/twelvetone"
)

// ErrUnknownChord reports a chord name missing from the table.
var ErrUnknownChord = errors.New("scale: unknown chord name")

// namedChords maps chord names to stacked (note-to-note) interval lists.
var namedChords = map[string][]string{
	"major": {"M3", "m3"},
	"minor": {"m3", "M3"},
}

// ChordNames lists the known chord names in sorted order.
func ChordNames() []string {
	names := make([]string, 0, len(namedChords))
	for name := range namedChords {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Chords spells chords over a seven-letter 12-division notation.
type Chords struct {
	namer *interval.Namer
}

// NewChords builds a chord speller; the notation must satisfy
// interval.NewNamer.
func NewChords(e *notation.EDO) (*Chords, error) {
	namer, err := interval.NewNamer(e)
	if err != nil {
		return nil, err
	}

	return &Chords{namer: namer}, nil
}

// StandardChords spells chords in the seven-letter ASCII alphabet.
func StandardChords() *Chords {
	c, err := NewChords(twelvetone.Standard())
	if err != nil {
		panic(err)
	}

	return c
}

// Named stacks a named chord from the tonic.
func (c *Chords) Named(name, tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	shape, ok := namedChords[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChord, name)
	}

	return c.Stacked(tonic, shape, dir, mirrored)
}

// Stacked builds a chord from note-to-note intervals.
func (c *Chords) Stacked(tonic string, intervals []string, dir interval.Direction, mirrored bool) ([]string, error) {
	return c.namer.Stack(tonic, intervals, false, dir, mirrored)
}

// FromRoot builds a chord with every interval measured from the tonic.
func (c *Chords) FromRoot(tonic string, intervals []string, dir interval.Direction, mirrored bool) ([]string, error) {
	return c.namer.Stack(tonic, intervals, true, dir, mirrored)
}

// Major stacks the major triad from the tonic.
func (c *Chords) Major(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return c.Named("major", tonic, dir, mirrored)
}

// Minor stacks the minor triad from the tonic.
func (c *Chords) Minor(tonic string, dir interval.Direction, mirrored bool) ([]string, error) {
	return c.Named("minor", tonic, dir, mirrored)
}
