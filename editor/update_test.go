package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ted/buffer"
	"github.com/iw2rmb/ted/layout"
)

func typeKeys(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = typeKeys(m, "X")
	if got := m.comp.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.comp.Offset(); got != 2 {
		t.Fatalf("offset after insert: got %d, want %d", got, 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.comp.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.comp.Text(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}
}

func TestUpdate_SetSizeWrapsAtContentWidth(t *testing.T) {
	m := New(Config{})
	m = m.SetSize(12, 3)
	m = typeKeys(m, "hello world foo")

	lines := m.comp.Lines()
	if len(lines) != 2 {
		t.Fatalf("rows: got %d, want 2", len(lines))
	}
	if got := string(m.comp.LineText(0)); got != "hello" {
		t.Fatalf("row 0: got %q, want %q", got, "hello")
	}
	if got := m.comp.Cursor(); got != (layout.Position{Row: 1, Col: 9}) {
		t.Fatalf("cursor: got %+v", got)
	}

	// Widening the viewport reflows without moving the cursor offset.
	m = m.SetSize(40, 3)
	if got := len(m.comp.Lines()); got != 1 {
		t.Fatalf("rows after resize: got %d, want 1", got)
	}
	if got := m.comp.Offset(); got != 15 {
		t.Fatalf("offset after resize: got %d, want 15", got)
	}
}

func TestUpdate_SendEmitsSubmitMsg(t *testing.T) {
	m := New(Config{})
	m = typeKeys(m, "hi")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from send")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok || msg.Text != "hi" {
		t.Fatalf("submit msg: got %#v", cmd())
	}
	if m.comp.Len() != 0 {
		t.Fatalf("composer not cleared after send: %q", m.comp.Text())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("send on empty composer returned a command")
	}
}

func TestUpdate_NewlineAndPaste(t *testing.T) {
	m := New(Config{})
	m = typeKeys(m, "a")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	m = typeKeys(m, "b")
	if got := m.comp.Text(); got != "a\nb" {
		t.Fatalf("text after newline: got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("\r\nc\rd"), Paste: true})
	if got := m.comp.Text(); got != "a\nb\nc\nd" {
		t.Fatalf("text after paste: got %q", got)
	}
}

func TestUpdate_CapacityErrorUntilNextEdit(t *testing.T) {
	m := New(Config{Capacity: 2})
	m = typeKeys(m, "abc")
	if got := m.comp.Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
	if !errors.Is(m.Err(), buffer.ErrCapacityExceeded) {
		t.Fatalf("Err: got %v, want ErrCapacityExceeded", m.Err())
	}

	// Moving does not clear the error.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Err() == nil {
		t.Fatalf("Err cleared by a motion")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Err() != nil {
		t.Fatalf("Err after delete: got %v, want nil", m.Err())
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{})
	m = typeKeys(m, "ab")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.comp.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.comp.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_EmacsKeyMap(t *testing.T) {
	m := New(Config{Text: "foo bar", KeyMap: EmacsKeyMap()})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if got := m.comp.Text(); got != "foo " {
		t.Fatalf("text after ctrl+w: got %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if got := m.comp.Offset(); got != 0 {
		t.Fatalf("offset after ctrl+a: got %d", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f"), Alt: true})
	if got := m.comp.Offset(); got != 3 {
		t.Fatalf("offset after alt+f: got %d, want 3", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	if got := m.comp.Text(); got != "fo " {
		t.Fatalf("text after ctrl+h: got %q", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	if cmd == nil {
		t.Fatalf("ctrl+j did not send")
	}
	if msg := cmd().(SubmitMsg); msg.Text != "fo " {
		t.Fatalf("sent: got %q", msg.Text)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m = typeKeys(m, "x")
	if got := m.comp.Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q", got)
	}
}

func TestUpdate_OnChangeFiresPerVersion(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	m = typeKeys(m, "ab")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	// No-op motion: no event.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})

	if len(events) != 3 {
		t.Fatalf("events: got %d, want 3", len(events))
	}
	last := events[len(events)-1]
	if last.Text != "ab" || last.Offset != 1 || last.Cursor != (layout.Position{Col: 1}) {
		t.Fatalf("last event: got %+v", last)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Version <= events[i-1].Version {
			t.Fatalf("versions not increasing: %d then %d", events[i-1].Version, events[i].Version)
		}
	}

	// Edits made by the host through Composer() are picked up on the next Update.
	m.Composer().Clear()
	_, _ = m.Update(nil)
	if got := events[len(events)-1].Text; got != "" {
		t.Fatalf("host edit event text: got %q", got)
	}
}

func TestUpdate_ViewportFollowsCursor(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(10, 3)

	if got := m.viewport.YOffset; got != 7 {
		t.Fatalf("initial yoffset: got %d, want %d", got, 7)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.viewport.YOffset; got != 7 {
		t.Fatalf("yoffset within view: got %d, want %d", got, 7)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.viewport.YOffset; got != 6 {
		t.Fatalf("yoffset above view: got %d, want %d", got, 6)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("yoffset after ctrl+home: got %d, want %d", got, 0)
	}
}
