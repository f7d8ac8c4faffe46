// Package metrics provides glyph width functions for layout.
//
// A WidthFunc must be stable for the lifetime of a font selection: the same
// function is used for wrapping and for placing the caret.
package metrics
