// Package fifths answers key-signature questions from the circle of
// fifths: relative and parallel keys, the accidentals a key carries, and
// the spelled notes of a key.
//
// A Circle pairs a major and a minor key table, each mapping key names to
// a signed signature count (positive sharps, negative flats, at most
// seven), with the order in which flats accrue. Tables ship for the
// Latin, typographic-accidental and solfège spellings; any alphabet with
// equivalent tables works through New. Major keys are conventionally
// written uppercase and minor keys lowercase, and results come back in
// the circle's configured case.
//
// Circles are immutable; every query names its key explicitly.
package fifths
