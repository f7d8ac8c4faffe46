package composer

// Insert inserts r at the cursor and moves the cursor past it.
//
// At capacity it returns buffer.ErrCapacityExceeded and changes nothing. When
// the cursor overflows a wrapped row, r lands after the trimmed spaces the
// cursor sits past.
func (c *Composer) Insert(r rune) error {
	off := c.Offset()
	return c.splice(off, 0, []rune{r}, off+1)
}

// InsertText inserts s at the cursor. Either all of s is inserted or, at
// capacity, none of it.
func (c *Composer) InsertText(s string) error {
	if s == "" {
		return nil
	}
	rs := []rune(s)
	off := c.Offset()
	return c.splice(off, 0, rs, off+len(rs))
}

// DeleteBackward removes count runes ending at the cursor. It is a no-op when
// count is not positive or reaches past the start of the text.
func (c *Composer) DeleteBackward(count int) {
	off := c.Offset()
	if count <= 0 || off == 0 || count > c.buf.Len() || count > off {
		return
	}
	_ = c.splice(off-count, count, nil, off-count)
}

// DeleteForward removes the rune at the cursor.
func (c *Composer) DeleteForward() {
	off := c.Offset()
	if off >= c.buf.Len() {
		return
	}
	_ = c.splice(off, 1, nil, off)
}

// DeleteWordBackward removes the spaces before the cursor and the word before
// them.
func (c *Composer) DeleteWordBackward() {
	off := c.Offset()
	c.DeleteBackward(off - prevWordBoundary(c.buf.Runes(), off))
}

// DeleteToLineStart removes everything between the start of the cursor's
// wrapped row and the cursor.
func (c *Composer) DeleteToLineStart() {
	l := c.lines.Line(c.cursor.Row)
	c.DeleteBackward(c.Offset() - l.Start)
}

// splice applies one edit atomically: the buffer, layout, cursor and history
// change together or not at all.
func (c *Composer) splice(offset, deleteCount int, ins []rune, cursorAfter int) error {
	prev := c.snapshot()
	if err := c.buf.Splice(offset, deleteCount, ins); err != nil {
		return err
	}
	c.relayout()
	c.cursor = c.lines.PositionFor(cursorAfter)
	c.version++
	c.recordUndo(prev)
	return nil
}
