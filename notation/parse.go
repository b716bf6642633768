package notation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse tokenizes a raw string into its note name, accidental run and
// octave number.
//
// All whitespace is stripped first. The cleaned string must then read as
// <note-name><accidental>*<octave-digits?> and be consumed completely;
// malformed ordering (an accidental before the note name, trailing junk)
// returns ErrSyntax. Octave digits are consumed right-to-left so
// multi-digit octaves parse correctly; a leading minus is honored unless
// negative octaves were disabled by an ambiguous "-" accidental.
func (n *Notation) Parse(raw string) (ParsedNote, error) {
	s := stripSpace(raw)
	if s == "" {
		return ParsedNote{}, fmt.Errorf("%w: empty note string", ErrSyntax)
	}
	if err := n.checkRunes(s); err != nil {
		return ParsedNote{}, err
	}

	var p ParsedNote
	rem := s
	if n.useOctaves {
		i := len(rem)
		for i > 0 && rem[i-1] >= '0' && rem[i-1] <= '9' {
			i--
		}
		if i < len(rem) {
			start := i
			if n.negOctaves && i > 0 && rem[i-1] == '-' {
				start = i - 1
			}
			oct, err := strconv.Atoi(rem[start:])
			if err != nil {
				return ParsedNote{}, fmt.Errorf("%w: octave %q out of range", ErrSyntax, rem[start:])
			}
			p.Octave = oct
			p.HasOctave = true
			rem = rem[:start]
		}
	}

	name, rest, ok := n.matchNote(rem)
	if !ok {
		return ParsedNote{}, fmt.Errorf("%w: %q must start with a note name", ErrSyntax, s)
	}

	syms, err := n.splitRun(rest)
	if err != nil {
		return ParsedNote{}, err
	}
	if n.simpleAcc {
		if err := n.checkSimpleRun(syms); err != nil {
			return ParsedNote{}, err
		}
	}

	p.Name = name
	p.Accidentals = rest

	return p, nil
}

// checkSimpleRun enforces the simple-accidental constraint: symbols from
// at most one of the sharp, flat and natural categories.
func (n *Notation) checkSimpleRun(syms []string) error {
	used := make(map[bucket]struct{})
	for _, sym := range syms {
		used[classify(n.accidentals[sym])] = struct{}{}
	}
	if len(used) > 1 {
		return fmt.Errorf("%w: notes may only mix accidentals from one of the sharp, flat and natural categories", ErrSyntax)
	}

	return nil
}

// stripSpace removes every whitespace rune.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
