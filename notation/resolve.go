package notation

import (
	"fmt"

	"github.com/SamuelHill/gomused/pitch"
)

// maxRatioOctave bounds octave scaling of ratio values: 2^octave must stay
// inside the int range of the ratio terms.
const maxRatioOctave = 30

// Resolve converts a parsed note into its final pitch value, dispatching
// on the notes' value domain.
//
//   - Steps: base + accidental modifiers, plus octave·divisions when
//     octaves are tracked; wrapped into [0, divisions) when divisions are
//     configured without octave tracking; raw sum otherwise.
//   - Cents: base + modifiers + octave·1200.
//   - Ratios: base × each modifier in sequence, then ×2^octave (or ÷2^|octave|
//     for negative octaves), simplified at every step.
//
// Accidentals from a foreign domain trigger the cents fallback: both sides
// are projected to cents and summed, which needs octave divisions for step
// values (ErrDomain otherwise).
func (n *Notation) Resolve(p ParsedNote) (pitch.Value, error) {
	base, ok := n.notes[p.Name]
	if !ok {
		return pitch.Value{}, fmt.Errorf("%w: unknown note name %q", ErrSyntax, p.Name)
	}

	syms, err := n.splitRun(p.Accidentals)
	if err != nil {
		return pitch.Value{}, err
	}
	mods := make([]pitch.Value, len(syms))
	native := true
	for i, sym := range syms {
		mods[i] = n.accidentals[sym]
		if mods[i].Kind() != base.Kind() {
			native = false
		}
	}

	if !native {
		return n.resolveMixed(base, mods, p)
	}
	switch base.Kind() {
	case pitch.CentKind:
		return n.resolveCents(base, mods, p), nil
	case pitch.RatioKind:
		return n.resolveRatio(base, mods, p)
	default:
		return n.resolveSteps(base, mods, p), nil
	}
}

// Value parses and resolves in one call.
func (n *Notation) Value(raw string) (pitch.Value, error) {
	p, err := n.Parse(raw)
	if err != nil {
		return pitch.Value{}, err
	}

	return n.Resolve(p)
}

// Enharmonic reports whether two spellings resolve to the same pitch value.
func (n *Notation) Enharmonic(note1, note2 string) (bool, error) {
	v1, err := n.Value(note1)
	if err != nil {
		return false, err
	}
	v2, err := n.Value(note2)
	if err != nil {
		return false, err
	}

	return v1 == v2, nil
}

func (n *Notation) resolveSteps(base pitch.Value, mods []pitch.Value, p ParsedNote) pitch.Value {
	sum := base.Steps()
	for _, m := range mods {
		sum += m.Steps()
	}
	switch {
	case n.useOctaves && n.divisions > 0:
		if p.HasOctave {
			sum += p.Octave * n.divisions
		}

		return pitch.StepValue(sum)
	case n.divisions > 0:
		return pitch.StepValue(pitch.WrapSteps(sum, n.divisions))
	default:
		return pitch.StepValue(sum)
	}
}

func (n *Notation) resolveCents(base pitch.Value, mods []pitch.Value, p ParsedNote) pitch.Value {
	sum := base.Cents()
	for _, m := range mods {
		sum += m.Cents()
	}
	if n.useOctaves && p.HasOctave {
		sum += float64(p.Octave) * 1200
	}

	return pitch.CentValue(sum)
}

func (n *Notation) resolveRatio(base pitch.Value, mods []pitch.Value, p ParsedNote) (pitch.Value, error) {
	r := base.Ratio().Simplify()
	for _, m := range mods {
		r = r.Mul(m.Ratio())
	}
	if p.HasOctave && p.Octave != 0 {
		o := p.Octave
		if o > maxRatioOctave || o < -maxRatioOctave {
			return pitch.Value{}, fmt.Errorf("%w: octave %d out of range for ratio arithmetic", ErrDomain, o)
		}
		octaves := pitch.Ratio{Num: 1 << abs(o), Den: 1}
		if o < 0 {
			r = r.Div(octaves)
		} else {
			r = r.Mul(octaves)
		}
	}

	return pitch.FromRatio(r), nil
}

// resolveMixed is the cents fallback for runs whose accidentals do not all
// share the note's domain.
func (n *Notation) resolveMixed(base pitch.Value, mods []pitch.Value, p ParsedNote) (pitch.Value, error) {
	sum, err := base.ToCents(n.divisions)
	if err != nil {
		return pitch.Value{}, fmt.Errorf("%w: note %q: %v", ErrDomain, p.Name, err)
	}
	for _, m := range mods {
		c, err := m.ToCents(n.divisions)
		if err != nil {
			return pitch.Value{}, fmt.Errorf("%w: accidental on %q: %v", ErrDomain, p.Name, err)
		}
		sum += c
	}
	if n.useOctaves && p.HasOctave {
		sum += float64(p.Octave) * 1200
	}

	return pitch.CentValue(sum), nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
