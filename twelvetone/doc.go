// Package twelvetone ships the ready-made twelve-tone material: note
// alphabets from several naming traditions, chromatic-map constructors
// over the standard 12-division octave, a MIDI-standard equal temperament
// seeded with every built-in spelling, and the classic just-intonation
// tables (Ptolemy, Pythagoras, HEWM accidentals).
//
// Constructors over the package's own tables cannot fail and return their
// value directly; constructors taking caller tables return an error.
package twelvetone
