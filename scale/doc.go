// Package scale spells scales and chords as note sequences by stacking
// intervals over a tonic.
//
// Scale shapes live in a table of named step patterns — W, H and 3H for
// whole, half and three-half steps, with raw interval names mixed in for
// the shapes steps cannot express (blues, bebop, the pentatonics). Named
// looks a shape up and walks it from a tonic; convenience methods cover
// the major/minor families and the seven diatonic modes. Chromatic
// spells all twelve degrees from a tonic under a sharp or flat bias.
//
// Chords work the same way from a much smaller table, stacked either
// note-to-note or from the root.
package scale
