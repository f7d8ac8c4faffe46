// Package layout wraps a rune sequence into visual lines under a width
// constraint and translates between buffer offsets and wrapped positions.
//
// Layout is a pure function of (text, max width, width function) and is
// always recomputed wholesale.
package layout
