package composer

import "github.com/iw2rmb/ted/layout"

type Motion int

const (
	MotionForward Motion = iota
	MotionBackward
	MotionForwardWord
	MotionBackwardWord
	MotionUp
	MotionDown
	MotionBegin // start of the wrapped row
	MotionEnd   // end of the wrapped row
	MotionTop   // start of the text
	MotionBottom
)

var motionNames = [...]string{
	MotionForward:      "forward",
	MotionBackward:     "backward",
	MotionForwardWord:  "forward-word",
	MotionBackwardWord: "backward-word",
	MotionUp:           "up",
	MotionDown:         "down",
	MotionBegin:        "begin",
	MotionEnd:          "end",
	MotionTop:          "top",
	MotionBottom:       "bottom",
}

func (m Motion) String() string {
	if m < 0 || int(m) >= len(motionNames) {
		return "unknown"
	}
	return motionNames[m]
}

// Move applies m to the cursor. Motions at the edges of the text are no-ops.
func (c *Composer) Move(m Motion) {
	next := Step(c.buf.Runes(), c.lines, c.cursor, m)
	if next == c.cursor {
		return
	}
	c.cursor = next
	c.version++
}

// Step returns the position reached from p by m. It does not depend on any
// state beyond its arguments; lines must be the layout of text.
//
// Character, line and row motions work on wrapped rows. Word motions work on
// the logical text, where only ' ' separates words.
func Step(text []rune, lines layout.Lines, p layout.Position, m Motion) layout.Position {
	if len(lines) == 0 {
		return layout.Position{}
	}
	p = lines.Clamp(p)
	l := lines[p.Row]
	last := len(lines) - 1

	switch m {
	case MotionForward:
		if p.Col < l.Len && p.Overflow == 0 {
			return layout.Position{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row < last {
			return layout.Position{Row: p.Row + 1}
		}
		if p.Overflow < l.Trimmed {
			return layout.Position{Row: p.Row, Col: l.Len, Overflow: p.Overflow + 1}
		}
		return p
	case MotionBackward:
		if p.Overflow > 0 {
			return layout.Position{Row: p.Row, Col: l.Len, Overflow: p.Overflow - 1}
		}
		if p.Col > 0 {
			return layout.Position{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row > 0 {
			return layout.Position{Row: p.Row - 1, Col: lines[p.Row-1].Len}
		}
		return p
	case MotionForwardWord:
		off := lines.Offset(p)
		next := nextWordBoundary(text, off)
		if next == off {
			return p
		}
		return lines.PositionFor(next)
	case MotionBackwardWord:
		off := lines.Offset(p)
		prev := prevWordBoundary(text, off)
		if prev == off {
			return p
		}
		return lines.PositionFor(prev)
	case MotionUp:
		if p.Row == 0 {
			return p
		}
		return layout.Position{Row: p.Row - 1, Col: minInt(p.Col, lines[p.Row-1].Len)}
	case MotionDown:
		if p.Row == last {
			return p
		}
		return layout.Position{Row: p.Row + 1, Col: minInt(p.Col, lines[p.Row+1].Len)}
	case MotionBegin:
		return layout.Position{Row: p.Row}
	case MotionEnd:
		return layout.Position{Row: p.Row, Col: l.Len}
	case MotionTop:
		return layout.Position{}
	case MotionBottom:
		return lines.PositionFor(lines.TextLen())
	default:
		return p
	}
}

// Word boundary rules:
// - skip spaces, then skip non-spaces
// - only ' ' separates words; newlines belong to words
func prevWordBoundary(text []rune, off int) int {
	i := clampInt(off, 0, len(text))
	for i > 0 && text[i-1] == ' ' {
		i--
	}
	for i > 0 && text[i-1] != ' ' {
		i--
	}
	return i
}

func nextWordBoundary(text []rune, off int) int {
	i := clampInt(off, 0, len(text))
	for i < len(text) && text[i] == ' ' {
		i++
	}
	for i < len(text) && text[i] != ' ' {
		i++
	}
	return i
}
