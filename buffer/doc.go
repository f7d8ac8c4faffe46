// Package buffer implements the capacity-bounded rune sequence that backs the
// message composer.
//
// Offsets are 0-based rune indices. A buffer never holds more than Cap runes;
// mutations that would exceed it fail without touching the text.
package buffer
