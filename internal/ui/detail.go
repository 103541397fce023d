package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviesearch/internal/omdb"
)

const (
	msgDetailFailed = "Failed to fetch movie details"
	msgNotFound     = "Movie not found"
)

// detailModel is the overlay for one selected title. It starts out loading
// and ends either populated or with an error; there is no retry.
type detailModel struct {
	id          string
	seq         int
	loading     bool
	err         string
	movie       *omdb.Detail
	placeholder string

	viewport viewport.Model
	width    int
	height   int
}

func newDetailModel(id string, seq int, placeholder string, width, height int) *detailModel {
	d := &detailModel{
		placeholder: placeholder,
		viewport:    viewport.New(0, 0),
	}
	d.reset(id, seq)
	d.resize(width, height)
	return d
}

// reset points the overlay at another title and puts it back into loading.
func (d *detailModel) reset(id string, seq int) {
	d.id = id
	d.seq = seq
	d.loading = true
	d.err = ""
	d.movie = nil
	d.viewport.SetContent("")
	d.viewport.GotoTop()
}

func (d *detailModel) resize(width, height int) {
	d.width = min(max(width-8, 30), 96)
	d.height = max(height-10, 6)
	d.viewport.Width = d.width
	d.viewport.Height = d.height
	if d.movie != nil {
		d.viewport.SetContent(d.content())
	}
}

// closable reports whether the overlay offers a close action. It does not
// while its request is outstanding.
func (d *detailModel) closable() bool {
	return !d.loading
}

func (d *detailModel) populated() bool {
	return !d.loading && d.movie != nil
}

// apply stores the outcome of a detail request. Responses issued for an
// earlier selection are ignored and apply returns false.
func (d *detailModel) apply(msg detailResultMsg) bool {
	if msg.seq != d.seq || msg.id != d.id {
		return false
	}

	d.loading = false
	if msg.err != nil {
		d.movie = nil
		d.err = detailErrorText(msg.err)
		return true
	}
	if msg.detail == nil {
		d.err = msgNotFound
		return true
	}

	d.err = ""
	d.movie = msg.detail
	d.viewport.SetContent(d.content())
	d.viewport.GotoTop()
	return true
}

func detailErrorText(err error) string {
	if msg, ok := omdb.Message(err); ok {
		return msg
	}
	var apiErr *omdb.APIError
	if errors.As(err, &apiErr) || errors.Is(err, omdb.ErrNotFound) {
		return msgNotFound
	}
	return msgDetailFailed
}

func (d *detailModel) Update(msg tea.Msg) (*detailModel, tea.Cmd) {
	if !d.populated() {
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *detailModel) View(spinner string) string {
	switch {
	case d.loading:
		return overlayStyle.Render(spinner + " " + normalTextStyle.Render("Loading movie details..."))

	case d.movie == nil:
		msg := d.err
		if msg == "" {
			msg = msgNotFound
		}
		return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			errorStyle.Render(wrapText(msg, 48)),
			"",
			mutedTextStyle.Render("esc: close"),
		))
	}

	return overlayStyle.Render(d.viewport.View())
}

// content formats every field of the record for the viewport.
func (d *detailModel) content() string {
	m := d.movie
	width := d.width - 2

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(wrapText(m.Title, width)))
	sb.WriteString("\n")

	facts := []string{"📅 " + m.Year, "⏱ " + m.Runtime, badge(m.Type)}
	if m.Rated != "" {
		facts = append(facts, badgeStyle.Background(badgeColors[omdb.KindMovie]).Render(m.Rated))
	}
	sb.WriteString(mutedTextStyle.Render(strings.Join(facts, "  ")))
	sb.WriteString("\n")

	if m.ImdbRating != omdb.NotAvailable {
		sb.WriteString(ratingStyle.Render(fmt.Sprintf("★ %s (%s votes)", m.ImdbRating, m.ImdbVotes)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	section := func(label, value string) {
		sb.WriteString(subtitleStyle.Render(label))
		sb.WriteString("\n")
		sb.WriteString(normalTextStyle.Render(wrapText(value, width)))
		sb.WriteString("\n\n")
	}

	section("Plot", m.Plot)
	section("Genre", m.Genre)
	section("Director", m.Director)
	section("Writer", m.Writer)
	section("Cast", m.Actors)
	section("Language", m.Language)
	section("Country", m.Country)
	section("Released", m.Released)
	if m.Awards != omdb.NotAvailable {
		section("Awards", m.Awards)
	}
	if m.BoxOffice != "" {
		section("Box Office", m.BoxOffice)
	}
	section("Poster", omdb.PosterURL(m.Poster, d.placeholder))

	sb.WriteString(subtitleStyle.Render("More Info:"))
	sb.WriteString("\n")
	sb.WriteString(normalTextStyle.Render(imdbURL(m.ImdbID)))

	return sb.String()
}
