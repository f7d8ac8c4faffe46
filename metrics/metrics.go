package metrics

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabCells is the width of a tab in cells (or space advances for Face).
const TabCells = 4

// WidthFunc returns the advance of a single rune.
type WidthFunc func(r rune) float64

// Monospace returns a WidthFunc that gives every rune the same advance.
func Monospace(advance float64) WidthFunc {
	if advance < 0 {
		advance = 0
	}
	return func(rune) float64 { return advance }
}

// Cells returns a WidthFunc measuring terminal cells.
func Cells() WidthFunc {
	return func(r rune) float64 {
		return float64(cellWidth(r))
	}
}

func cellWidth(r rune) int {
	if r == '\t' {
		return TabCells
	}
	w := runewidth.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	return w
}

// Cached memoizes fn. The returned function is not safe for concurrent use.
func Cached(fn WidthFunc) WidthFunc {
	if fn == nil {
		return nil
	}
	var ascii [128]float64
	var asciiOK [128]bool
	other := make(map[rune]float64)
	return func(r rune) float64 {
		if r >= 0 && r < 128 {
			if !asciiOK[r] {
				ascii[r] = fn(r)
				asciiOK[r] = true
			}
			return ascii[r]
		}
		if w, ok := other[r]; ok {
			return w
		}
		w := fn(r)
		other[r] = w
		return w
	}
}
