package notation

import (
	"fmt"

	"github.com/SamuelHill/gomused/pitch"
)

// Spell finds a note spelling for a pitch value.
//
// An exact match against a base note wins outright and is bias-independent;
// ties go to the first match in canonical order (ascending value, then
// name). Otherwise the accidentals of the bias bucket are tried in their
// configured order: for each one the note value that would combine with it
// into the target is computed (subtraction, or ratio division) and looked
// up exactly. The search is deliberately one accidental layer deep —
// twelve-tone systems reach every pitch class within a single sharp or
// flat — and returns ErrNotFound past that depth.
func (n *Notation) Spell(v pitch.Value, bias Bias) (string, error) {
	if name, ok := n.exactNote(v); ok {
		return name, nil
	}

	for _, sym := range n.biasBucket(bias) {
		target, ok := n.invert(v, n.accidentals[sym])
		if !ok {
			continue
		}
		if name, found := n.exactNote(target); found {
			return name + sym, nil
		}
	}

	return "", fmt.Errorf("%w: no %s spelling for %s within one accidental", ErrNotFound, bias, v)
}

// exactNote scans the canonical order for a base note with exactly this value.
func (n *Notation) exactNote(v pitch.Value) (string, bool) {
	for _, name := range n.order {
		if n.notes[name] == v {
			return name, true
		}
	}

	return "", false
}

// invert computes the note value that, combined with the accidental,
// yields v: subtraction in the step and cent domains, ratio division for
// ratios, cents subtraction across domains. Reports false when the
// cross-domain projection is impossible.
func (n *Notation) invert(v, adjust pitch.Value) (pitch.Value, bool) {
	if adjust.Kind() == v.Kind() {
		switch v.Kind() {
		case pitch.CentKind:
			return pitch.CentValue(v.Cents() - adjust.Cents()), true
		case pitch.RatioKind:
			return pitch.FromRatio(v.Ratio().Div(adjust.Ratio())), true
		default:
			return pitch.StepValue(v.Steps() - adjust.Steps()), true
		}
	}

	vc, err := v.ToCents(n.divisions)
	if err != nil {
		return pitch.Value{}, false
	}
	ac, err := adjust.ToCents(n.divisions)
	if err != nil {
		return pitch.Value{}, false
	}

	return pitch.CentValue(vc - ac), true
}

// biasBucket selects the accidental bucket for a bias.
func (n *Notation) biasBucket(bias Bias) []string {
	if n.buckets == nil {
		return nil
	}
	if bias == Flat {
		return n.buckets[bucketFlat]
	}

	return n.buckets[bucketSharp]
}
