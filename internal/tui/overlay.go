// pattern: Functional Core

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// padLines returns exactly height lines of s, each cut or padded to width.
func padLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := ansi.StringWidth(line); w > width {
			line = ansi.Truncate(line, width, "")
		} else if w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return out
}

// overlayAt paints fg onto bg with its top-left corner at (x, y). Parts of
// fg that fall outside bg are dropped.
func overlayAt(bg []string, fg string, width, x, y int) []string {
	fgLines := strings.Split(fg, "\n")
	fgWidth := 0
	for _, l := range fgLines {
		fgWidth = max(fgWidth, ansi.StringWidth(l))
	}

	out := append([]string(nil), bg...)
	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}

		left, right := x, x+fgWidth
		skip := 0
		if left < 0 {
			skip, left = -left, 0
		}
		if right > width {
			right = width
		}
		if left >= right {
			continue
		}

		if w := ansi.StringWidth(line); w < fgWidth {
			line += strings.Repeat(" ", fgWidth-w)
		}
		piece := ansi.Cut(line, skip, skip+right-left)

		out[row] = ansi.Cut(out[row], 0, left) + piece + ansi.Cut(out[row], right, width)
	}
	return out
}
