package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ted/composer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.edit(m.comp.InsertText(normalizeNewlines(string(msg.Runes))))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Send):
		return m.send()
	case key.Matches(msg, km.Newline):
		m.edit(m.comp.Insert('\n'))

	case key.Matches(msg, km.Left):
		m.comp.Move(composer.MotionBackward)
	case key.Matches(msg, km.Right):
		m.comp.Move(composer.MotionForward)
	case key.Matches(msg, km.Up):
		m.comp.Move(composer.MotionUp)
	case key.Matches(msg, km.Down):
		m.comp.Move(composer.MotionDown)
	case key.Matches(msg, km.WordLeft):
		m.comp.Move(composer.MotionBackwardWord)
	case key.Matches(msg, km.WordRight):
		m.comp.Move(composer.MotionForwardWord)
	case key.Matches(msg, km.Home):
		m.comp.Move(composer.MotionBegin)
	case key.Matches(msg, km.End):
		m.comp.Move(composer.MotionEnd)
	case key.Matches(msg, km.Top):
		m.comp.Move(composer.MotionTop)
	case key.Matches(msg, km.Bottom):
		m.comp.Move(composer.MotionBottom)

	case key.Matches(msg, km.Backspace):
		m.deleting(func() { m.comp.DeleteBackward(1) })
	case key.Matches(msg, km.Delete):
		m.deleting(m.comp.DeleteForward)
	case key.Matches(msg, km.DeleteWord):
		m.deleting(m.comp.DeleteWordBackward)
	case key.Matches(msg, km.DeleteLine):
		m.deleting(m.comp.DeleteToLineStart)

	case key.Matches(msg, km.Undo):
		if m.comp.Undo() {
			m.err = nil
		}
	case key.Matches(msg, km.Redo):
		if m.comp.Redo() {
			m.err = nil
		}

	default:
		if msg.Type == tea.KeyTab {
			m.edit(m.comp.Insert('\t'))
			return m, nil
		}
		if msg.Type == tea.KeySpace {
			m.edit(m.comp.Insert(' '))
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.edit(m.comp.InsertText(string(msg.Runes)))
		}
	}

	return m, nil
}

// edit records the outcome of an insert. A rejected insert leaves the text
// untouched and keeps its error until the next successful edit.
func (m *Model) edit(err error) {
	m.err = err
}

func (m *Model) deleting(del func()) {
	v := m.comp.Version()
	del()
	if m.comp.Version() != v {
		m.err = nil
	}
}

func (m Model) send() (Model, tea.Cmd) {
	text := m.comp.Submit()
	if text == nil {
		return m, nil
	}
	m.err = nil
	msg := SubmitMsg{Text: string(text)}
	return m, func() tea.Msg { return msg }
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
