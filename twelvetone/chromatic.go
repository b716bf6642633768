package twelvetone

import "github.com/SamuelHill/gomused/notation"

// mustEDO wraps construction over the package's own tables, which cannot
// produce an invalid configuration.
func mustEDO(notes map[string]int, accidentals map[string]int, opts ...notation.Option) *notation.EDO {
	e, err := notation.NewEDO(notes, accidentals, 12, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// Standard is the chromatic map over the seven-letter alphabet with ASCII
// accidentals.
func Standard() *notation.EDO {
	return mustEDO(Alphabet, Accidentals)
}

// Unicode is the seven-letter alphabet with typographic accidentals.
func Unicode() *notation.EDO {
	return mustEDO(Alphabet, UnicodeAccidentals)
}

// SolfegeMap is the fixed-do solfège alphabet with ASCII accidentals.
func SolfegeMap() *notation.EDO {
	return mustEDO(Solfege, Accidentals)
}

// SolfegeUnicode is the fixed-do solfège alphabet with typographic
// accidentals.
func SolfegeUnicode() *notation.EDO {
	return mustEDO(Solfege, UnicodeAccidentals)
}

// Custom builds a 12-division chromatic map over a caller alphabet with no
// accidentals.
func Custom(notes map[string]int, opts ...notation.Option) (*notation.EDO, error) {
	return notation.NewEDO(notes, nil, 12, opts...)
}

// CustomAlpha builds a 12-division chromatic map over a caller alphabet
// with the ASCII accidentals.
func CustomAlpha(notes map[string]int, opts ...notation.Option) (*notation.EDO, error) {
	return notation.NewEDO(notes, Accidentals, 12, opts...)
}

// CustomUnicode builds a 12-division chromatic map over a caller alphabet
// with the typographic accidentals.
func CustomUnicode(notes map[string]int, opts ...notation.Option) (*notation.EDO, error) {
	return notation.NewEDO(notes, UnicodeAccidentals, 12, opts...)
}
