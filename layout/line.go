package layout

// Line is a view into the text: runes [Start, Start+Len) are rendered and the
// following Trimmed runes are spaces swallowed by a wrap point.
type Line struct {
	Start   int
	Len     int
	Trimmed int

	// Hard is true when a newline follows the line's trimmed spaces.
	Hard bool
}

// End returns the offset just past the line, including trimmed spaces.
func (l Line) End() int { return l.Start + l.Len + l.Trimmed }

// RealLen is the number of runes the line owns, trimmed spaces included.
func (l Line) RealLen() int { return l.Len + l.Trimmed }

// Lines is an ordered layout. A layout produced by Recalc is never empty.
type Lines []Line

// Line returns the line at row, clamping row into range.
func (ls Lines) Line(row int) Line {
	if len(ls) == 0 {
		return Line{}
	}
	return ls[clampInt(row, 0, len(ls)-1)]
}

// Text returns the rendered runes of row.
func (ls Lines) Text(text []rune, row int) []rune {
	if row < 0 || row >= len(ls) {
		return nil
	}
	l := ls[row]
	start := clampInt(l.Start, 0, len(text))
	end := clampInt(l.Start+l.Len, start, len(text))
	return text[start:end]
}

// Width returns the rendered width of row under width.
func (ls Lines) Width(text []rune, row int, width func(rune) float64) float64 {
	var w float64
	for _, r := range ls.Text(text, row) {
		w += glyphWidth(width, r)
	}
	return w
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
