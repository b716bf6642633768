// Package gomused is your in-memory music-theory toolkit: configurable
// pitch notations, tuning systems, intervals, scales, chords and the
// circle of fifths.
//
// 🚀 What is gomused?
//
//	A pure-Go library that brings together:
//		• Pitch algebra: one value type over EDO steps, cents and just ratios
//		• Notation engines: parse, resolve and respell notes in any alphabet
//		• Tone rows: every pitch class a notation can name, enumerated
//		• Tuning systems: equal, general and just temperaments with Hz output
//		• Twelve-tone tables: Latin, solfège, German, Dutch, Japanese, sargam
//		• Theory layers: interval naming, scale & chord stacking, key signatures
//
// ✨ Why choose gomused?
//
//   - Alphabet-agnostic – bring any note names, accidentals and octave divisions
//   - Exact where it matters – just ratios stay rational, never floats
//   - Immutable instances – share notations and circles across goroutines freely
//   - Pure Go – no cgo, no audio stack, no hidden deps
//
// Under the hood, everything is organized under seven subpackages:
//
//	pitch/       — step/cent/ratio values and the arithmetic between them
//	notation/    — the engine: parsing, resolution, spelling, tone rows
//	temperament/ — pitch classes, tuning systems, frequency math
//	twelvetone/  — ready-made alphabets, chromatic maps, MIDI, just tunings
//	interval/    — interval names between notes and the walks they imply
//	scale/       — named scale and chord shapes stacked over a tonic
//	fifths/      — relative/parallel keys, signatures, notes in a key
//
// Quick example:
//
//	C4 ──parse──▶ {C, octave 4} ──resolve──▶ 48 ──spell(♭)──▶ C4
//
//	a note string, its step value in 12-EDO, and the way back.
//
//	go get github.com/SamuelHill/gomused
package gomused
