// Package interval names the distances between notes of a seven-letter,
// 12-division notation.
//
// Interval names are a quality run followed by a scale degree: P1, m3,
// M6, A4, d5. Perfect degrees (1, 4, 5) take P/A/d, imperfect degrees
// take M/m/A/d, and the A and d qualities stack (AA4 is two chromatic
// steps beyond the perfect fourth). Degrees past 7 are compound: M9 is
// an octave plus a major second.
//
// A Namer computes interval names between notes, inverts and measures
// them, walks from a note by an interval, and stacks interval lists into
// note sequences. It works over any notation.EDO with seven letters, 12
// divisions and single-step sharp and flat accidentals, so solfège and
// typographic alphabets name intervals just as well as the standard one.
package interval
