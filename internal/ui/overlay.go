package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeOverlay draws fg on top of bg with its top-left corner at column x,
// row y. Cells of bg outside fg are kept, styles included; bg grows when fg
// reaches past its last line or column.
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		base := bgLines[row]

		left := ansi.Truncate(base, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")

		bgLines[row] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}

	return strings.Join(bgLines, "\n")
}
