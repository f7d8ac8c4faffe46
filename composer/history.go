package composer

type snapshot struct {
	text   []rune
	offset int
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (c *Composer) snapshot() snapshot {
	return snapshot{
		text:   c.buf.Take(),
		offset: c.Offset(),
	}
}

func (c *Composer) restore(s snapshot) {
	c.buf.Reset()
	// The snapshot was taken from this buffer, so it fits.
	_ = c.buf.Splice(0, 0, s.text)
	c.relayout()
	c.cursor = c.lines.PositionFor(clampInt(s.offset, 0, c.buf.Len()))
}

func (c *Composer) recordUndo(prev snapshot) {
	limit := c.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	c.hist.undo = append(c.hist.undo, prev)
	if len(c.hist.undo) > limit {
		c.hist.undo = c.hist.undo[len(c.hist.undo)-limit:]
	}
	c.hist.redo = nil
}

func (c *Composer) CanUndo() bool { return len(c.hist.undo) > 0 }

func (c *Composer) CanRedo() bool { return len(c.hist.redo) > 0 }

func (c *Composer) Undo() bool {
	if len(c.hist.undo) == 0 {
		return false
	}

	cur := c.snapshot()
	i := len(c.hist.undo) - 1
	prev := c.hist.undo[i]
	c.hist.undo = c.hist.undo[:i]
	c.hist.redo = append(c.hist.redo, cur)

	c.restore(prev)
	c.version++
	return true
}

func (c *Composer) Redo() bool {
	if len(c.hist.redo) == 0 {
		return false
	}

	cur := c.snapshot()
	i := len(c.hist.redo) - 1
	next := c.hist.redo[i]
	c.hist.redo = c.hist.redo[:i]

	if limit := c.opt.HistoryLimit; limit > 0 {
		c.hist.undo = append(c.hist.undo, cur)
		if len(c.hist.undo) > limit {
			c.hist.undo = c.hist.undo[len(c.hist.undo)-limit:]
		}
	}

	c.restore(next)
	c.version++
	return true
}
