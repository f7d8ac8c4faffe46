package composer

import (
	"github.com/iw2rmb/ted/buffer"
	"github.com/iw2rmb/ted/layout"
	"github.com/iw2rmb/ted/metrics"
)

type Options struct {
	Capacity     int               // forwarded to buffer.Options
	MaxWidth     float64           // wrap constraint in Width units
	Width        metrics.WidthFunc // default: metrics.Cells()
	HistoryLimit int               // default: 100; negative disables undo
}

// Composer is the buffer + layout + cursor unit behind a composer field.
type Composer struct {
	buf    *buffer.Buffer
	lines  layout.Lines
	cursor layout.Position

	maxWidth float64
	width    metrics.WidthFunc

	version uint64

	opt  Options
	hist historyState
}

// New returns a Composer holding text with the cursor at its end.
//
// Text longer than the capacity is truncated.
func New(text string, opt Options) *Composer {
	if opt.Width == nil {
		opt.Width = metrics.Cells()
	}
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 100
	}
	c := &Composer{
		buf:      buffer.New(buffer.Options{Capacity: opt.Capacity}),
		maxWidth: opt.MaxWidth,
		width:    opt.Width,
		opt:      opt,
	}

	rs := []rune(text)
	if len(rs) > c.buf.Cap() {
		rs = rs[:c.buf.Cap()]
	}
	_ = c.buf.Splice(0, 0, rs)
	c.relayout()
	c.cursor = c.lines.PositionFor(c.buf.Len())
	return c
}

func (c *Composer) Text() string { return c.buf.Text() }

// Runes returns the current text without copying. It must not be modified
// and is invalidated by the next mutation.
func (c *Composer) Runes() []rune { return c.buf.Runes() }

func (c *Composer) Len() int { return c.buf.Len() }

func (c *Composer) Cap() int { return c.buf.Cap() }

func (c *Composer) Version() uint64 { return c.version }

// Lines returns the current layout. It is replaced, never mutated, on change.
func (c *Composer) Lines() layout.Lines { return c.lines }

func (c *Composer) Cursor() layout.Position { return c.cursor }

// Offset returns the buffer offset addressed by the cursor.
func (c *Composer) Offset() int { return c.lines.Offset(c.cursor) }

func (c *Composer) MaxWidth() float64 { return c.maxWidth }

func (c *Composer) Width() metrics.WidthFunc { return c.width }

// LineText returns the rendered runes of row.
func (c *Composer) LineText(row int) []rune {
	return c.lines.Text(c.buf.Runes(), row)
}

// CaretX returns the horizontal caret position within its row, in Width
// units. An overflowed caret sits one space advance past the rendered text.
func (c *Composer) CaretX() float64 {
	row := c.lines.Text(c.buf.Runes(), c.cursor.Row)
	var x float64
	for _, r := range row[:minInt(c.cursor.Col, len(row))] {
		x += nonNegative(c.width(r))
	}
	if c.cursor.Overflowed() {
		x += nonNegative(c.width(' '))
	}
	return x
}

// SetMaxWidth changes the wrap constraint. The text is never touched; the
// cursor keeps its buffer offset.
func (c *Composer) SetMaxWidth(w float64) {
	if w == c.maxWidth {
		return
	}
	c.maxWidth = w
	c.relayoutKeepingOffset()
}

// SetWidthFunc switches the glyph metrics, e.g. after a font change.
func (c *Composer) SetWidthFunc(fn metrics.WidthFunc) {
	if fn == nil {
		return
	}
	c.width = fn
	c.relayoutKeepingOffset()
}

// SetCursorOffset moves the cursor to the given buffer offset.
func (c *Composer) SetCursorOffset(offset int) {
	offset = clampInt(offset, 0, c.buf.Len())
	next := c.lines.PositionFor(offset)
	if next == c.cursor {
		return
	}
	c.cursor = next
	c.version++
}

// TakeText returns a copy of the composed text.
func (c *Composer) TakeText() []rune { return c.buf.Take() }

// Clear empties the composer. The cleared text can be restored with Undo.
func (c *Composer) Clear() {
	if c.buf.Len() == 0 && c.cursor == (layout.Position{}) {
		return
	}
	prev := c.snapshot()
	c.buf.Reset()
	c.relayout()
	c.cursor = layout.Position{}
	c.version++
	if len(prev.text) > 0 {
		c.recordUndo(prev)
	}
}

// Submit takes the composed text and clears the composer. It returns nil when
// there is nothing to send.
func (c *Composer) Submit() []rune {
	if c.buf.Len() == 0 {
		return nil
	}
	out := c.TakeText()
	c.Clear()
	return out
}

func (c *Composer) relayout() {
	c.lines = layout.Recalc(c.buf.Runes(), c.maxWidth, c.width)
}

func (c *Composer) relayoutKeepingOffset() {
	off := c.Offset()
	c.relayout()
	c.cursor = c.lines.PositionFor(off)
	c.version++
}

func nonNegative(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
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
