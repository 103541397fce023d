package ui

import (
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviesearch/internal/omdb"
)

// Styling
var (
	// Colors
	primaryColor   = lipgloss.Color("#A855F7") // purple
	secondaryColor = lipgloss.Color("#EC4899") // pink
	textColor      = lipgloss.Color("#F5F5F1")
	mutedColor     = lipgloss.Color("#9CA3AF")
	accentColor    = lipgloss.Color("#4B5563")
	errorColor     = lipgloss.Color("#F87171")
	ratingColor    = lipgloss.Color("#EAB308")

	badgeColors = map[omdb.Kind]lipgloss.Color{
		omdb.KindMovie:   lipgloss.Color("#3B82F6"),
		omdb.KindSeries:  lipgloss.Color("#22C55E"),
		omdb.KindEpisode: lipgloss.Color("#F97316"),
		omdb.KindOther:   lipgloss.Color("#6B7280"),
	}

	// Text styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	normalTextStyle = lipgloss.NewStyle().
			Foreground(textColor)

	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ratingColor).
			Bold(true).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	// Component styles
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	focusedInputStyle = inputStyle.
				BorderForeground(primaryColor)

	submitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(secondaryColor).
			Bold(true).
			Padding(0, 2)

	disabledSubmitStyle = submitStyle.
				Background(accentColor).
				Foreground(mutedColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1).
			Width(cardWidth)

	selectedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 3).
			Align(lipgloss.Center)

	errorPanelStyle = panelStyle.
			BorderForeground(errorColor)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)

func badge(tag string) string {
	label := capitalize(tag)
	if label == "" {
		label = "Unknown"
	}
	return badgeStyle.Background(badgeColors[omdb.KindOf(tag)]).Render(label)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
