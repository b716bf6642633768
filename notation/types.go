package notation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/SamuelHill/gomused/pitch"
)

// Bias selects which accidental bucket the reverse speller searches.
type Bias int

const (
	// Sharp prefers raising accidentals ("C#" for pitch class 1).
	Sharp Bias = iota

	// Flat prefers lowering accidentals ("Db" for pitch class 1).
	Flat
)

// String names the bias for error messages.
func (b Bias) String() string {
	if b == Flat {
		return "flat"
	}

	return "sharp"
}

// bucket classifies an accidental by the sign of its modifier.
type bucket int

const (
	bucketSharp bucket = iota
	bucketFlat
	bucketNatural
)

// ParsedNote is the transient result of Parse: the canonical note name, the
// raw accidental run (empty when none) and the octave when one was written.
type ParsedNote struct {
	Name        string
	Accidentals string
	Octave      int
	HasOctave   bool
}

// Alias pairs a note spelling with its resolved pitch value; tone rows are
// ordered slices of aliases.
type Alias struct {
	Name  string
	Value pitch.Value
}

// Option configures a Notation before construction.
type Option func(n *Notation)

// WithAccidentals supplies the accidental symbol table. Modifier values
// normally share the notes' domain; a foreign-domain modifier is combined
// through the cents fallback instead.
func WithAccidentals(accidentals map[string]pitch.Value) Option {
	return func(n *Notation) { n.accSource = accidentals }
}

// WithDivisions declares how many equal steps the octave is divided into.
// Required for equal-division (step-valued) systems that wrap or scale by
// octave; must be positive.
func WithDivisions(divisions int) Option {
	return func(n *Notation) { n.divisions = divisions }
}

// WithoutOctaves disables octave-number recognition: digits become illegal
// characters and resolved values never carry an octave offset.
func WithoutOctaves() Option {
	return func(n *Notation) { n.useOctaves = false }
}

// WithSimpleAccidentals restricts each parsed note to accidentals from at
// most one of the sharp, flat and natural categories.
func WithSimpleAccidentals() Option {
	return func(n *Notation) { n.simpleAcc = true }
}

// alias maps one case variant of a note name back to its canonical form.
type alias struct {
	text      string
	canonical string
}

// Notation is an immutable pitch-notation instance. Construct with New;
// safe for concurrent readers afterwards.
type Notation struct {
	notes map[string]pitch.Value
	order []string // canonical: ascending value, then name
	kind  pitch.Kind

	accSource   map[string]pitch.Value // as passed to WithAccidentals
	accidentals map[string]pitch.Value
	accOrder    []string            // ascending value, then name
	accTokens   []string            // longest-first, for run splitting
	buckets     map[bucket][]string // accOrder order within each bucket

	aliases     []alias // longest-first, for note matching
	tokens      []string
	singleRunes map[rune]struct{}
	multiRune   bool

	useOctaves bool
	negOctaves bool
	divisions  int
	simpleAcc  bool

	warnings []string

	rowOnce sync.Once
	row     []Alias
	rowErr  error
}

// New builds a Notation from a note table and options.
//
// The note table must be non-empty and uniformly typed (all steps, all
// cents, or all ratios); violations return ErrConfig. Octaves are
// recognized by default. Configuring "-" as an accidental while octaves
// are on records a warning (see Warnings) and disables negative octave
// numbers, since a leading minus would be ambiguous.
func New(notes map[string]pitch.Value, opts ...Option) (*Notation, error) {
	n := &Notation{useOctaves: true}
	for _, opt := range opts {
		opt(n)
	}

	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: notes table is empty", ErrConfig)
	}
	if n.divisions < 0 {
		return nil, fmt.Errorf("%w: octave divisions must be positive, got %d", ErrConfig, n.divisions)
	}

	n.notes = make(map[string]pitch.Value, len(notes))
	first := true
	for name, v := range notes {
		if name == "" {
			return nil, fmt.Errorf("%w: empty note name", ErrConfig)
		}
		if first {
			n.kind = v.Kind()
			first = false
		} else if v.Kind() != n.kind {
			return nil, fmt.Errorf("%w: note values mix %s and %s domains", ErrConfig, n.kind, v.Kind())
		}
		n.notes[name] = v
	}
	if n.kind == pitch.RatioKind && n.divisions > 0 {
		return nil, fmt.Errorf("%w: octave divisions do not apply to ratio-valued notes", ErrConfig)
	}
	n.order = sortedKeys(n.notes)

	if err := n.buildAccidentals(); err != nil {
		return nil, err
	}

	n.negOctaves = n.useOctaves
	if _, dash := n.accidentals["-"]; dash && n.useOctaves {
		n.negOctaves = false
		n.warnings = append(n.warnings,
			"octaves cannot be negative while '-' is also an accidental symbol")
	}

	n.buildGrammar()

	return n, nil
}

// buildAccidentals copies the accidental table and classifies every symbol
// into exactly one bucket by the sign of its modifier (for ratios, the sign
// of numerator − denominator).
func (n *Notation) buildAccidentals() error {
	if n.accSource == nil {
		return nil
	}
	if len(n.accSource) == 0 {
		return fmt.Errorf("%w: accidentals table is empty", ErrConfig)
	}

	n.accidentals = make(map[string]pitch.Value, len(n.accSource))
	for sym, v := range n.accSource {
		if sym == "" {
			return fmt.Errorf("%w: empty accidental symbol", ErrConfig)
		}
		n.accidentals[sym] = v
	}
	n.accSource = nil
	n.accOrder = sortedKeys(n.accidentals)

	n.buckets = map[bucket][]string{}
	for _, sym := range n.accOrder {
		b := classify(n.accidentals[sym])
		n.buckets[b] = append(n.buckets[b], sym)
	}

	n.accTokens = append([]string(nil), n.accOrder...)
	sort.SliceStable(n.accTokens, func(i, j int) bool {
		return len(n.accTokens[i]) > len(n.accTokens[j])
	})

	return nil
}

// classify derives the bucket for one accidental value.
func classify(v pitch.Value) bucket {
	switch v.Kind() {
	case pitch.RatioKind:
		r := v.Ratio()
		switch {
		case r.Num > r.Den:
			return bucketSharp
		case r.Num < r.Den:
			return bucketFlat
		default:
			return bucketNatural
		}
	case pitch.CentKind:
		switch {
		case v.Cents() > 0:
			return bucketSharp
		case v.Cents() < 0:
			return bucketFlat
		default:
			return bucketNatural
		}
	default:
		switch {
		case v.Steps() > 0:
			return bucketSharp
		case v.Steps() < 0:
			return bucketFlat
		default:
			return bucketNatural
		}
	}
}

// sortedKeys orders a value table ascending by pitch value, breaking ties
// by name. This is the canonical order used for exact-match priority and
// for every user-visible listing.
func sortedKeys(m map[string]pitch.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		vi, vj := m[keys[i]], m[keys[j]]
		if pitch.Less(vi, vj) {
			return true
		}
		if pitch.Less(vj, vi) {
			return false
		}

		return keys[i] < keys[j]
	})

	return keys
}

// sortAliases orders a tone row ascending by value, then by name.
func sortAliases(row []Alias) {
	sort.SliceStable(row, func(i, j int) bool {
		if pitch.Less(row[i].Value, row[j].Value) {
			return true
		}
		if pitch.Less(row[j].Value, row[i].Value) {
			return false
		}

		return row[i].Name < row[j].Name
	})
}
