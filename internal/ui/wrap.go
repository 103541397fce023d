package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText wraps text to width terminal cells, hyphenating words that do
// not fit on a line of their own.
func wrapText(text string, width int) string {
	if width <= 1 {
		return text
	}

	var (
		result    strings.Builder
		lineWidth int
	)

	for _, word := range strings.Fields(text) {
		for runewidth.StringWidth(word) > width {
			if lineWidth > 0 {
				result.WriteString("\n")
				lineWidth = 0
			}
			head, tail := splitCells(word, width-1)
			result.WriteString(head + "-\n")
			word = tail
		}

		w := runewidth.StringWidth(word)
		switch {
		case lineWidth == 0:
		case lineWidth+1+w > width:
			result.WriteString("\n")
			lineWidth = 0
		default:
			result.WriteString(" ")
			lineWidth++
		}

		result.WriteString(word)
		lineWidth += w
	}

	return result.String()
}

// splitCells cuts s after at most n cells. The head always keeps the first
// rune so callers make progress on runes wider than n.
func splitCells(s string, n int) (string, string) {
	cells := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if i > 0 && cells+rw > n {
			return s[:i], s[i:]
		}
		cells += rw
	}
	return s, ""
}

// truncate shortens s to at most n cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 || runewidth.StringWidth(s) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	head, _ := splitCells(s, n-1)
	if runewidth.StringWidth(head) > n-1 {
		return "…"
	}
	return head + "…"
}
