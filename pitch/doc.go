// Package pitch provides the numeric value algebra underneath gomused's
// notation engine.
//
// A pitch value lives in exactly one of three domains:
//
//   - StepKind  — integer step counts in an equal division of the octave (EDO).
//   - CentKind  — floating-point cents, 1200 per octave.
//   - RatioKind — just-intonation frequency ratios (pairs of positive ints).
//
// Value is a comparable tagged variant over the three domains: two Values
// are the same pitch iff they compare equal with ==. Ratios are kept in
// lowest terms at all times so that ratio equality is exact-match equality.
//
// The package also provides the octave primitives shared by every tuning
// system built on top of it:
//
//	WrapSteps(v, divisions)   // wrap an EDO step count into [0, divisions)
//	Ratio.LimitOctave()       // normalize a ratio into the [1, 2] window
//	Ratio.Cents()             // 1200·log2(num/den)
//
// Errors:
//
//	ErrBadRatio — a ratio term is zero or negative.
package pitch
