package ui

import (
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviesearch/internal/omdb"
)

const (
	cardWidth  = 30
	cardHeight = 7 // rendered lines, border included
)

// card renders one search result.
type card struct {
	item        omdb.Item
	selected    bool
	brokenImage bool
	placeholder string
}

// posterURL is the image the card shows: the placeholder when OMDb has no
// poster or the poster failed to load.
func (c card) posterURL() string {
	if c.brokenImage {
		return c.placeholder
	}
	return omdb.PosterURL(c.item.Poster, c.placeholder)
}

func (c card) View() string {
	inner := cardWidth - 2

	title := strings.Split(wrapText(c.item.Title, inner), "\n")
	if len(title) > 2 {
		title = title[:2]
		title[1] = truncate(title[1]+" …", inner)
	}
	for len(title) < 2 {
		title = append(title, "")
	}

	heading := subtitleStyle
	if c.selected {
		heading = heading.Foreground(primaryColor)
	}

	lines := []string{
		badge(c.item.Type),
		heading.Render(strings.Join(title, "\n")),
		mutedTextStyle.Render(truncate(c.item.Year+" · "+c.item.Type, inner)),
		mutedTextStyle.Render(truncate("poster "+posterLabel(c.posterURL()), inner)),
	}

	style := cardStyle
	if c.selected {
		style = selectedCardStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// posterLabel shortens an image URL to host and file name.
func posterLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host + "/" + path.Base(u.Path)
}
