package notation

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// buildGrammar derives the matching machinery from the configured tables:
// the case-variant alias list for note names (longest-first) and the legal
// character set for quick syntax rejection.
//
// Each note name is expanded into upper, title and lower variants so that
// case-based conventions (major vs. minor key naming, solfège title case)
// still resolve to the canonical name. Duplicate variants keep their
// first-seen canonical mapping, following the table's canonical order.
func (n *Notation) buildGrammar() {
	seen := make(map[string]struct{})
	for _, name := range n.order {
		for _, variant := range caseVariants(name) {
			if _, dup := seen[variant]; dup {
				continue
			}
			seen[variant] = struct{}{}
			n.aliases = append(n.aliases, alias{text: variant, canonical: name})
		}
	}
	sort.SliceStable(n.aliases, func(i, j int) bool {
		return len(n.aliases[i].text) > len(n.aliases[j].text)
	})

	for _, a := range n.aliases {
		n.tokens = append(n.tokens, a.text)
	}
	n.tokens = append(n.tokens, n.accOrder...)

	n.singleRunes = make(map[rune]struct{})
	for _, tok := range n.tokens {
		if utf8.RuneCountInString(tok) > 1 {
			n.multiRune = true
		}
		for _, r := range tok {
			n.singleRunes[r] = struct{}{}
		}
	}
}

// caseVariants returns the upper, title and lower spellings of a name.
// Scripts without case produce three identical variants; the duplicate
// filter in buildGrammar collapses them.
func caseVariants(name string) [3]string {
	return [3]string{strings.ToUpper(name), titleCase(name), strings.ToLower(name)}
}

// titleCase upper-cases the first rune and lower-cases the rest.
func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// checkRunes validates that every character of a cleaned note string is
// legal for this notation.
//
// When every configured token is a single rune the legal set is simply all
// token runes. When multi-rune tokens exist the set is narrowed to the
// characters of tokens that actually occur as substrings of the input, so
// a fragment of a multi-byte token cannot sneak through on its own.
// Octave digits (and the minus sign when negative octaves are enabled) are
// always legal.
func (n *Notation) checkRunes(s string) error {
	allowed := n.singleRunes
	if n.multiRune {
		allowed = make(map[rune]struct{})
		for _, tok := range n.tokens {
			if !strings.Contains(s, tok) {
				continue
			}
			for _, r := range tok {
				allowed[r] = struct{}{}
			}
		}
	}

	for _, r := range s {
		if _, ok := allowed[r]; ok {
			continue
		}
		if n.useOctaves && r >= '0' && r <= '9' {
			continue
		}
		if n.negOctaves && r == '-' {
			continue
		}

		return fmt.Errorf("%w: character %q is not part of this notation", ErrSyntax, r)
	}

	return nil
}

// matchNote strips the longest note-name alias prefix from s, returning
// the canonical name and the remainder. Longest match wins, so a
// two-letter note name beats an accidental that happens to be its prefix.
func (n *Notation) matchNote(s string) (canonical, rest string, ok bool) {
	for _, a := range n.aliases {
		if strings.HasPrefix(s, a.text) {
			return a.canonical, s[len(a.text):], true
		}
	}

	return "", "", false
}

// splitRun splits an accidental run into its configured symbols by greedy
// longest-token matching. An empty run yields nil.
func (n *Notation) splitRun(run string) ([]string, error) {
	if run == "" {
		return nil, nil
	}
	if len(n.accTokens) == 0 {
		return nil, fmt.Errorf("%w: %q left after the note name but no accidentals are configured", ErrSyntax, run)
	}

	var syms []string
	rest := run
	for rest != "" {
		matched := false
		for _, tok := range n.accTokens {
			if strings.HasPrefix(rest, tok) {
				syms = append(syms, tok)
				rest = rest[len(tok):]
				matched = true

				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: %q is not a configured accidental", ErrSyntax, rest)
		}
	}

	return syms, nil
}
