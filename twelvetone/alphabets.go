package twelvetone

import "github.com/SamuelHill/gomused/pitch"

// Alphabet is the seven-letter chromatic alphabet over 12 divisions.
var Alphabet = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// Accidentals is the ASCII sharp/flat/natural table.
var Accidentals = map[string]int{"#": 1, "b": -1, "n": 0}

// UnicodeAccidentals is the typographic sharp/flat/natural table.
var UnicodeAccidentals = map[string]int{"♯": 1, "♭": -1, "♮": 0}

// Solfege is the fixed-do solmization alphabet.
var Solfege = map[string]int{
	"do": 0, "re": 2, "mi": 4, "fa": 5, "sol": 7, "la": 9, "ti": 11,
}

// NeoLatin matches Solfege but keeps the older "si" for the seventh degree.
var NeoLatin = map[string]int{
	"do": 0, "re": 2, "mi": 4, "fa": 5, "sol": 7, "la": 9, "si": 11,
}

// German uses H for the leading tone and B for what the standard alphabet
// spells Bb.
var German = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 10, "H": 11,
}

// Dutch spells the chromatic degrees with -is and -es suffixes instead of
// accidental symbols.
var Dutch = map[string]int{
	"C": 0, "Cis": 1, "Des": 1, "D": 2, "Dis": 3, "Es": 3, "E": 4,
	"F": 5, "Fis": 6, "Ges": 6, "G": 7, "Gis": 8, "As": 8, "A": 9,
	"Ais": 10, "Bes": 10, "B": 11,
}

// Japanese uses the iroha letters with 嬰 (sharp) and 変 (flat) prefixes
// baked into the names.
var Japanese = map[string]int{
	"ハ": 0, "嬰ハ": 1, "変ニ": 1, "ニ": 2, "嬰ニ": 3,
	"変ホ": 3, "ホ": 4, "ヘ": 5, "嬰へ": 6, "変ト": 6,
	"ト": 7, "嬰ト": 8, "変イ": 8, "イ": 9, "嬰イ": 10,
	"変ロ": 10, "ロ": 11,
}

// Hindustani is the sargam alphabet with komal and tivra marks.
var Hindustani = map[string]int{
	"सा": 0, "रे॒": 1, "रे": 2, "ग॒": 3,
	"ग": 4, "म": 5, "म॑": 6, "प": 7,
	"ध॒": 8, "ध": 9, "नि॒": 10, "नि": 11,
}

// Bengali is the Bengali sargam alphabet; it carries no enharmonics.
var Bengali = map[string]int{
	"সা": 0, "ঋ": 1, "রে": 2, "জ্ঞ": 3,
	"গ": 4, "ম": 5, "হ্ম": 6, "প": 7,
	"দ": 8, "ধ": 9, "ণ": 10, "নি": 11,
}

// HEWM is the Helmholtz-Ellis / Wolf / Monzo accidental table for just
// intonation: paired symbols raising and lowering by the five commas.
var HEWM = map[string]pitch.Ratio{
	"#": {Num: 2187, Den: 2048}, "b": {Num: 2048, Den: 2187},
	"^": {Num: 33, Den: 32}, "v": {Num: 32, Den: 33},
	">": {Num: 64, Den: 63}, "<": {Num: 63, Den: 64},
	"+": {Num: 81, Den: 80}, "-": {Num: 80, Den: 81},
}

// PtolemyDiatonicNotes is Ptolemy's intense diatonic scale on C.
var PtolemyDiatonicNotes = map[string]pitch.Ratio{
	"C": {Num: 1, Den: 1}, "D": {Num: 9, Den: 8}, "E": {Num: 5, Den: 4},
	"F": {Num: 4, Den: 3}, "G": {Num: 3, Den: 2}, "A": {Num: 5, Den: 3},
	"B": {Num: 15, Den: 8},
}

// PtolemyChromaticNotes extends the intense diatonic to all twelve
// chromatic degrees on C.
var PtolemyChromaticNotes = map[string]pitch.Ratio{
	"C": {Num: 1, Den: 1}, "C#": {Num: 16, Den: 15}, "D": {Num: 9, Den: 8},
	"Eb": {Num: 6, Den: 5}, "E": {Num: 5, Den: 4}, "F": {Num: 4, Den: 3},
	"F#": {Num: 45, Den: 32}, "G": {Num: 3, Den: 2}, "Ab": {Num: 8, Den: 5},
	"A": {Num: 5, Den: 3}, "Bb": {Num: 9, Den: 5}, "B": {Num: 15, Den: 8},
}

// PythagoreanNotes is the three-limit chromatic tuning on C. F# and Gb are
// enharmonic in 12EDO but distinct here, so both spellings appear.
var PythagoreanNotes = map[string]pitch.Ratio{
	"C": {Num: 1, Den: 1}, "Db": {Num: 256, Den: 243}, "D": {Num: 9, Den: 8},
	"Eb": {Num: 32, Den: 27}, "E": {Num: 81, Den: 64}, "F": {Num: 4, Den: 3},
	"F#": {Num: 729, Den: 512}, "Gb": {Num: 1024, Den: 729}, "G": {Num: 3, Den: 2},
	"Ab": {Num: 128, Den: 81}, "A": {Num: 27, Den: 16}, "Bb": {Num: 16, Den: 9},
	"B": {Num: 243, Den: 128},
}
