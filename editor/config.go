package editor

import "github.com/iw2rmb/ted/metrics"

// Config configures the editor Model.
type Config struct {
	// Initial text for the composer.
	Text string

	// Placeholder is drawn when the composer is empty.
	Placeholder string

	// Rendering options.
	Style Style

	// Key bindings. A zero KeyMap means DefaultKeyMap().
	KeyMap KeyMap

	// Forwarded to composer.Options.
	Capacity     int
	HistoryLimit int

	// Width measures runes in terminal cells. Default: metrics.Cells().
	Width metrics.WidthFunc

	// OnChange is called after every change of the composer version.
	OnChange func(ChangeEvent)
}
