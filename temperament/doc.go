// Package temperament models tuning systems: ordered collections of pitch
// classes, each a set of names tied to a position above a root expressed in
// cents.
//
// Three flavors of pitch class exist. A general class carries raw cents, an
// equal class is a division within an N-division octave, and a just class
// is a frequency ratio. A System collects classes sorted by cents and
// merges spellings of the same class into alternate names on insert, so
// seeding one system from several notations yields a translation table.
//
// The concrete systems mirror the pitch-class flavors: JustSystem for
// ratio tables, GeneralTemperament for an arbitrary step size (Carlos
// alpha/beta/gamma scales), and EqualTemperament for 1200/N-cent steps.
// EqualTemperament can additionally tune against a reference standard such
// as MIDI's key 69 at 440 Hz.
//
// Frequencies come from TuneInterval: 2^octave · root · 2^(cents/1200).
//
// Errors are sentinel values (ErrConfig, ErrDuplicateName,
// ErrUnknownClass) wrapped with context; match with errors.Is.
package temperament
