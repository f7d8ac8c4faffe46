package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	Top, Bottom           key.Binding

	Backspace, Delete key.Binding
	DeleteWord        key.Binding
	DeleteLine        key.Binding

	Newline key.Binding
	Send    key.Binding

	Undo, Redo key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		End:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "row end")),
		Top:    key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "message start")),
		Bottom: key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "message end")),

		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Delete:     key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		DeleteLine: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to row start")),

		Newline: key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "newline")),
		Send:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	}
}

// EmacsKeyMap binds motions and deletes to emacs-style chords. ctrl+j sends;
// a newline needs alt+enter since terminals cannot report ctrl+shift+j.
func EmacsKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("ctrl+b", "left"), key.WithHelp("ctrl+b", "left")),
		Right: key.NewBinding(key.WithKeys("ctrl+f", "right"), key.WithHelp("ctrl+f", "right")),
		Up:    key.NewBinding(key.WithKeys("ctrl+p", "up"), key.WithHelp("ctrl+p", "up")),
		Down:  key.NewBinding(key.WithKeys("ctrl+n", "down"), key.WithHelp("ctrl+n", "down")),

		WordLeft:  key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "word right")),

		Home:   key.NewBinding(key.WithKeys("ctrl+a", "home"), key.WithHelp("ctrl+a", "row start")),
		End:    key.NewBinding(key.WithKeys("ctrl+e", "end"), key.WithHelp("ctrl+e", "row end")),
		Top:    key.NewBinding(key.WithKeys("alt+<"), key.WithHelp("alt+<", "message start")),
		Bottom: key.NewBinding(key.WithKeys("alt+>"), key.WithHelp("alt+>", "message end")),

		Backspace:  key.NewBinding(key.WithKeys("ctrl+h", "backspace"), key.WithHelp("ctrl+h", "delete left")),
		Delete:     key.NewBinding(key.WithKeys("ctrl+d", "delete"), key.WithHelp("ctrl+d", "delete right")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		DeleteLine: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to row start")),

		Newline: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "newline")),
		Send:    key.NewBinding(key.WithKeys("ctrl+j", "enter"), key.WithHelp("ctrl+j", "send")),

		Undo: key.NewBinding(key.WithKeys("ctrl+_", "ctrl+z"), key.WithHelp("ctrl+_", "undo")),
		Redo: key.NewBinding(key.WithKeys("alt+_"), key.WithHelp("alt+_", "redo")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Send, km.Newline, km.DeleteWord, km.Undo}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.WordLeft, km.WordRight, km.Home, km.End, km.Top, km.Bottom},
		{km.Backspace, km.Delete, km.DeleteWord, km.DeleteLine},
		{km.Newline, km.Send, km.Undo, km.Redo},
	}
}

func (km KeyMap) isZero() bool {
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if len(b.Keys()) > 0 {
				return false
			}
		}
	}
	return true
}
