package editor

import (
	"github.com/iw2rmb/ted/composer"
	"github.com/iw2rmb/ted/layout"
)

type ChangeEvent struct {
	Version uint64
	Cursor  layout.Position
	Offset  int

	// Whole text; hosts can diff if needed.
	Text string
}

// SubmitMsg carries a sent message out of the editor.
type SubmitMsg struct {
	Text string
}

func buildChangeEvent(c *composer.Composer) ChangeEvent {
	return ChangeEvent{
		Version: c.Version(),
		Cursor:  c.Cursor(),
		Offset:  c.Offset(),
		Text:    c.Text(),
	}
}
