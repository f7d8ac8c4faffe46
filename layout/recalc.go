package layout

// wordStart marks where the pending word begins: the offset right after the
// most recent space on the current line and the line width up to it.
type wordStart struct {
	offset int
	width  float64
}

// Recalc lays out text as greedy word-wrapped lines no wider than maxWidth.
//
// Wrap rules:
//   - '\n' always ends a line; the newline itself belongs to no line.
//   - A space that does not fit is trimmed together with the spaces following
//     it; the next line starts after the run.
//   - A non-space rune that does not fit moves the pending word to a new line,
//     unless the word alone would not fit, in which case the line is broken at
//     the rune.
//   - A line holds at least one rune, so runes wider than maxWidth get a line
//     each.
//
// The result is never empty: empty text yields one empty line.
func Recalc(text []rune, maxWidth float64, width func(rune) float64) Lines {
	n := len(text)
	lines := make(Lines, 0, 1+n/32)

	var cur Line
	var used float64
	word := wordStart{}

	for i := 0; i < n; i++ {
		r := text[i]
		if r == '\n' {
			cur.Hard = true
			lines = append(lines, cur)
			cur = Line{Start: i + 1}
			used = 0
			word = wordStart{offset: i + 1}
			continue
		}

		w := glyphWidth(width, r)
		if used+w <= maxWidth || cur.RealLen() == 0 {
			cur.Len++
			used += w
			if r == ' ' {
				word = wordStart{offset: i + 1, width: used}
			}
			continue
		}

		if r == ' ' {
			j := i
			for j < n && text[j] == ' ' {
				j++
			}
			cur.Trimmed += j - i
			if j >= n {
				break
			}
			if text[j] == '\n' {
				i = j - 1
				continue
			}
			lines = append(lines, cur)
			cur = Line{Start: j}
			used = 0
			word = wordStart{offset: j}
			i = j - 1
			continue
		}

		if used-word.width+w >= maxWidth {
			lines = append(lines, cur)
			cur = Line{Start: i, Len: 1}
			used = w
			word = wordStart{offset: i}
			continue
		}

		cur.Len = word.offset - cur.Start
		trimTrailingSpaces(&cur, text)
		lines = append(lines, cur)
		cur = Line{Start: word.offset, Len: i - word.offset + 1}
		used = used - word.width + w
		word = wordStart{offset: word.offset}
	}

	return append(lines, cur)
}

// trimTrailingSpaces moves the spaces at the end of l's rendered part into
// its trimmed run.
func trimTrailingSpaces(l *Line, text []rune) {
	for l.Len > 0 && text[l.Start+l.Len-1] == ' ' {
		l.Len--
		l.Trimmed++
	}
}

func glyphWidth(width func(rune) float64, r rune) float64 {
	if width == nil {
		return 1
	}
	w := width(r)
	if w < 0 || w != w {
		return 0
	}
	return w
}
