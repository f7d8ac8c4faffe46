package main

import (
	"fmt"
	"io"

	"github.com/iw2rmb/ted/layout"
	"github.com/iw2rmb/ted/metrics"
)

// dumpLayout writes one line per wrapped row of text: the row's rendered
// width, its break kind and the rendered runes.
func dumpLayout(w io.Writer, text []rune, maxWidth float64, width metrics.WidthFunc) error {
	lines := layout.Recalc(text, maxWidth, width)
	for row, l := range lines {
		kind := "soft"
		switch {
		case l.Hard:
			kind = "hard"
		case row == len(lines)-1:
			kind = "end"
		}
		_, err := fmt.Fprintf(w, "%3d %7.2f %-4s trim=%d |%s|\n",
			row, lines.Width(text, row, width), kind, l.Trimmed, string(lines.Text(text, row)))
		if err != nil {
			return err
		}
	}
	return nil
}
