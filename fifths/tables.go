package fifths

// DefaultMajors maps the major keys to their signature counts: positive
// for sharps, negative for flats. C# and Cb carry full signatures; F#/Gb
// sit on the enharmonic seam.
var DefaultMajors = map[string]int{
	"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6, "C#": 7,
	"F": -1, "Bb": -2, "Eb": -3, "Ab": -4, "Db": -5, "Gb": -6, "Cb": -7,
}

// DefaultMinors maps the minor keys, written lowercase, to their
// signature counts.
var DefaultMinors = map[string]int{
	"a": 0, "e": 1, "b": 2, "f#": 3, "c#": 4, "g#": 5, "d#": 6, "a#": 7,
	"d": -1, "g": -2, "c": -3, "f": -4, "bb": -5, "eb": -6, "ab": -7,
}

// UnicodeMajors spells DefaultMajors with typographic accidentals.
var UnicodeMajors = map[string]int{
	"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F♯": 6, "C♯": 7,
	"F": -1, "B♭": -2, "E♭": -3, "A♭": -4, "D♭": -5, "G♭": -6, "C♭": -7,
}

// UnicodeMinors spells DefaultMinors with typographic accidentals.
var UnicodeMinors = map[string]int{
	"a": 0, "e": 1, "b": 2, "f♯": 3, "c♯": 4, "g♯": 5, "d♯": 6, "a♯": 7,
	"d": -1, "g": -2, "c": -3, "f": -4, "b♭": -5, "e♭": -6, "a♭": -7,
}

// SolfegeMajors spells the major keys in fixed-do solfège, uppercase by
// convention.
var SolfegeMajors = map[string]int{
	"DO": 0, "SOL": 1, "RE": 2, "LA": 3, "MI": 4, "TI": 5, "FA#": 6, "DO#": 7,
	"FA": -1, "TIb": -2, "MIb": -3, "LAb": -4, "REb": -5, "SOLb": -6, "DOb": -7,
}

// SolfegeMinors spells the minor keys in lowercase solfège.
var SolfegeMinors = map[string]int{
	"la": 0, "mi": 1, "ti": 2, "fa#": 3, "do#": 4, "sol#": 5, "re#": 6, "la#": 7,
	"re": -1, "sol": -2, "do": -3, "fa": -4, "tib": -5, "mib": -6, "lab": -7,
}

// SolfegeUnicodeMajors spells SolfegeMajors with typographic accidentals.
var SolfegeUnicodeMajors = map[string]int{
	"DO": 0, "SOL": 1, "RE": 2, "LA": 3, "MI": 4, "TI": 5, "FA♯": 6, "DO♯": 7,
	"FA": -1, "TI♭": -2, "MI♭": -3, "LA♭": -4, "RE♭": -5, "SOL♭": -6, "DO♭": -7,
}

// SolfegeUnicodeMinors spells SolfegeMinors with typographic accidentals.
var SolfegeUnicodeMinors = map[string]int{
	"la": 0, "mi": 1, "ti": 2, "fa♯": 3, "do♯": 4, "sol♯": 5, "re♯": 6, "la♯": 7,
	"re": -1, "sol": -2, "do": -3, "fa": -4, "ti♭": -5, "mi♭": -6, "la♭": -7,
}

// OrderOfFlats is the sequence in which flats accrue in key signatures;
// sharps accrue in the reverse order.
var OrderOfFlats = []string{"B", "E", "A", "D", "G", "C", "F"}

// SolfegeOrderOfFlats is OrderOfFlats in solfège letters.
var SolfegeOrderOfFlats = []string{"TI", "MI", "LA", "RE", "SOL", "DO", "FA"}
