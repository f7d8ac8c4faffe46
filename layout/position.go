package layout

// Position addresses a cursor in wrapped coordinates.
//
// Col never exceeds the rendered length of Row. Overflow counts how many of
// the row's trimmed spaces the cursor sits past; a non-zero Overflow tells the
// renderer to draw the caret one glyph beyond the last rendered glyph.
type Position struct {
	Row      int
	Col      int
	Overflow int
}

// Overflowed reports whether the caret sits past the rendered end of its row.
func (p Position) Overflowed() bool { return p.Overflow > 0 }

// PositionFor translates a buffer offset into a wrapped position.
//
// An offset that is both the end of a soft-wrapped row and the start of the
// next one maps to the start of the next row. Offsets inside a row's trimmed
// spaces, or at the end of a hard-broken or final row with trimmed spaces,
// clamp Col to the rendered length and report the rest as Overflow.
func (ls Lines) PositionFor(offset int) Position {
	if len(ls) == 0 {
		return Position{}
	}
	if offset < 0 {
		offset = 0
	}

	last := len(ls) - 1
	row := last
	for i, l := range ls {
		end := l.End()
		if offset < end || (offset == end && l.Hard) {
			row = i
			break
		}
	}

	l := ls[row]
	col := clampInt(offset-l.Start, 0, l.RealLen())
	if col > l.Len {
		return Position{Row: row, Col: l.Len, Overflow: col - l.Len}
	}
	return Position{Row: row, Col: col}
}

// Offset translates a wrapped position back into a buffer offset.
//
// Out-of-range components are clamped. Offset(PositionFor(o)) == o for every
// offset in [0, len(text)].
func (ls Lines) Offset(p Position) int {
	if len(ls) == 0 {
		return 0
	}
	l := ls.Line(p.Row)
	col := clampInt(p.Col, 0, l.Len)
	over := clampInt(p.Overflow, 0, l.Trimmed)
	if over > 0 {
		col = l.Len
	}
	return l.Start + col + over
}

// Clamp returns p limited to the bounds of ls.
func (ls Lines) Clamp(p Position) Position {
	if len(ls) == 0 {
		return Position{}
	}
	row := clampInt(p.Row, 0, len(ls)-1)
	l := ls[row]
	out := Position{Row: row, Col: clampInt(p.Col, 0, l.Len)}
	if over := clampInt(p.Overflow, 0, l.Trimmed); over > 0 {
		out.Col = l.Len
		out.Overflow = over
	}
	return out
}

// TextLen returns the text length ls was computed for.
func (ls Lines) TextLen() int {
	if len(ls) == 0 {
		return 0
	}
	return ls[len(ls)-1].End()
}
