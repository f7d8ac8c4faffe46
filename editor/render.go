package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/ted/metrics"
)

func (m *Model) renderContent() string {
	if m.comp.Len() == 0 && m.cfg.Placeholder != "" {
		return m.renderPlaceholder()
	}

	lines := m.comp.Lines()
	out := make([]string, 0, len(lines))
	for row := range lines {
		out = append(out, m.renderRow(row))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRow(row int) string {
	st := m.cfg.Style
	text := m.comp.LineText(row)
	cur := m.comp.Cursor()

	var line string
	if !m.focused || row != cur.Row {
		line = st.Text.Render(expandTabs(text))
	} else {
		line = renderCaretRow(st, text, cur.Col, cur.Overflowed())
	}
	if w := m.viewport.Width; w > 0 {
		line = ansi.Truncate(line, w, "")
	}
	return line
}

// renderCaretRow draws text with the caret on the cell at col, or one cell
// past the rendered text when the caret sits inside a trimmed run.
func renderCaretRow(st Style, text []rune, col int, overflowed bool) string {
	if overflowed {
		return st.Text.Render(expandTabs(text)+" ") + st.Cursor.Render(" ")
	}
	if col >= len(text) {
		return st.Text.Render(expandTabs(text)) + st.Cursor.Render(" ")
	}

	var sb strings.Builder
	sb.WriteString(st.Text.Render(expandTabs(text[:col])))
	if text[col] == '\t' {
		sb.WriteString(st.Cursor.Render(" "))
		sb.WriteString(st.Text.Render(strings.Repeat(" ", metrics.TabCells-1)))
	} else {
		sb.WriteString(st.Cursor.Render(string(text[col])))
	}
	sb.WriteString(st.Text.Render(expandTabs(text[col+1:])))
	return sb.String()
}

func (m *Model) renderPlaceholder() string {
	st := m.cfg.Style
	rs := []rune(m.cfg.Placeholder)
	var line string
	if m.focused {
		line = st.Cursor.Render(string(rs[0])) + st.Placeholder.Render(string(rs[1:]))
	} else {
		line = st.Placeholder.Render(string(rs))
	}
	if w := m.viewport.Width; w > 0 {
		line = ansi.Truncate(line, w, "")
	}
	return line
}

// expandTabs renders tabs as the cells metrics.Cells measures them with.
func expandTabs(rs []rune) string {
	var sb strings.Builder
	for _, r := range rs {
		if r == '\t' {
			sb.WriteString(strings.Repeat(" ", metrics.TabCells))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
