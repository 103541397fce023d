// Package ui is the movie search screen: a query field, a grid of result
// cards and a detail overlay for the selected title.
//
// Model owns all state. Network calls run as commands and report back with
// messages, so every state change happens inside Update.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/sebastiantruijens/moviesearch/internal/omdb"
)

const (
	msgSearchFailed = "Failed to fetch movies. Please try again."
	msgNoMovies     = "No movies found"
)

// MovieAPI is the subset of the OMDb client the screen uses.
type MovieAPI interface {
	Search(ctx context.Context, query string) ([]omdb.Item, error)
	Detail(ctx context.Context, id string) (*omdb.Detail, error)
	ProbePosters(ctx context.Context, items []omdb.Item) []string
}

// Options configures the screen.
type Options struct {
	DefaultQuery      string
	ProbePosters      bool
	CardPlaceholder   string
	DetailPlaceholder string
}

type focusArea int

const (
	focusInput focusArea = iota
	focusGrid
)

// Model represents the application state
type Model struct {
	api    MovieAPI
	logger zerolog.Logger
	opts   Options
	keys   keyMap
	help   help.Model

	input   searchInput
	spinner spinner.Model

	results       []omdb.Item
	loading       bool
	err           string
	hasSearched   bool
	brokenPosters map[string]bool

	focus  focusArea
	cursor int

	selectedID string
	detail     *detailModel
	detailSeq  int

	width  int
	height int
}

// NewModel creates a new application model
func NewModel(api MovieAPI, logger zerolog.Logger, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		api:           api,
		logger:        logger.With().Str("component", "ui").Logger(),
		opts:          opts,
		keys:          defaultKeyMap(),
		help:          help.New(),
		input:         newSearchInput(),
		spinner:       sp,
		results:       []omdb.Item{},
		brokenPosters: map[string]bool{},
		focus:         focusInput,
		width:         80,
		height:        24,
	}
}

// Init starts the cursor and spinner and searches for the default query.
func (m Model) Init() tea.Cmd {
	query := m.opts.DefaultQuery
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		func() tea.Msg { return startSearchMsg{query: query} },
	)
}

// Update handles messages and user input
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		if m.focus == focusGrid {
			return m.updateGrid(msg)
		}
		return m.updateInput(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.setWidth(msg.Width)
		if m.detail != nil {
			m.detail.resize(msg.Width, msg.Height)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case startSearchMsg:
		return m.runSearch(msg.query)

	case searchResultMsg:
		return m.applySearch(msg)

	case posterProbeMsg:
		for _, id := range msg.broken {
			m.brokenPosters[id] = true
		}
		return m, nil

	case detailResultMsg:
		if m.detail == nil || msg.seq != m.detailSeq || !m.detail.apply(msg) {
			m.logger.Debug().Str("id", msg.id).Int("seq", msg.seq).Msg("stale detail response dropped")
		}
		return m, nil

	case openBrowserMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("open browser")
		}
		return m, nil
	}

	// Cursor blink and other textinput internals.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runSearch starts a search for query. Blank queries change nothing.
// Overlapping searches are not deduplicated: the last result to arrive wins.
func (m Model) runSearch(query string) (Model, tea.Cmd) {
	q := strings.TrimSpace(query)
	if q == "" {
		return m, nil
	}

	m.loading = true
	m.err = ""
	m.hasSearched = true

	m.logger.Info().Str("query", q).Msg("search started")

	api := m.api
	return m, func() tea.Msg {
		items, err := api.Search(context.Background(), q)
		return searchResultMsg{query: q, items: items, err: err}
	}
}

func (m Model) applySearch(msg searchResultMsg) (Model, tea.Cmd) {
	m.loading = false
	m.cursor = 0
	m.brokenPosters = map[string]bool{}

	if msg.err != nil {
		m.results = []omdb.Item{}
		m.err = searchErrorText(msg.err)
		m.logger.Info().Err(msg.err).Str("query", msg.query).Msg("search failed")
		if m.focus == focusGrid {
			cmd := m.focusInput()
			return m, cmd
		}
		return m, nil
	}

	m.results = msg.items
	m.err = ""
	m.logger.Info().Str("query", msg.query).Int("results", len(msg.items)).Msg("search completed")

	if !m.opts.ProbePosters || len(msg.items) == 0 {
		return m, nil
	}
	api, items := m.api, msg.items
	return m, func() tea.Msg {
		return posterProbeMsg{broken: api.ProbePosters(context.Background(), items)}
	}
}

func searchErrorText(err error) string {
	if msg, ok := omdb.Message(err); ok {
		return msg
	}
	var apiErr *omdb.APIError
	if errors.As(err, &apiErr) {
		return msgNoMovies
	}
	return msgSearchFailed
}

// selectItem opens the overlay for id, or repoints the open overlay. The
// detail is fetched again every time, even for the same title.
func (m Model) selectItem(id string) (Model, tea.Cmd) {
	if id == "" || (m.detail != nil && m.selectedID == id) {
		return m, nil
	}

	m.selectedID = id
	m.detailSeq++
	if m.detail == nil {
		m.detail = newDetailModel(id, m.detailSeq, m.opts.DetailPlaceholder, m.width, m.height)
	} else {
		m.detail.reset(id, m.detailSeq)
	}

	m.logger.Debug().Str("id", id).Int("seq", m.detailSeq).Msg("detail requested")

	api, seq := m.api, m.detailSeq
	return m, func() tea.Msg {
		detail, err := api.Detail(context.Background(), id)
		return detailResultMsg{id: id, seq: seq, detail: detail, err: err}
	}
}

// closeDetail hides the overlay. Results and search state are untouched.
func (m Model) closeDetail() Model {
	m.selectedID = ""
	m.detail = nil
	return m
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.focus()
}

func (m *Model) focusGrid() {
	m.focus = focusGrid
	m.input.blur()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if !m.input.canSubmit(m.loading) {
			return m, nil
		}
		return m.runSearch(m.input.Value())

	case key.Matches(msg, m.keys.FocusGrid):
		if len(m.results) > 0 && !m.loading && m.err == "" {
			m.focusGrid()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusFind):
		cmd := m.focusInput()
		return m, cmd
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.moveCursor(-cols)
		} else {
			cmd := m.focusInput()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols)
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.results) {
			return m.selectItem(m.results[m.cursor].ImdbID)
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.results) {
		return
	}
	m.cursor = next
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		if m.detail.closable() {
			return m.closeDetail(), nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		return m.stepSelection(-1)

	case key.Matches(msg, m.keys.Next):
		return m.stepSelection(1)

	case key.Matches(msg, m.keys.Open):
		if m.detail.populated() {
			url := imdbURL(m.detail.movie.ImdbID)
			return m, func() tea.Msg {
				return openBrowserMsg{err: openBrowser(url)}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// stepSelection moves the open overlay to the neighbouring result.
func (m Model) stepSelection(delta int) (tea.Model, tea.Cmd) {
	idx := -1
	for i, item := range m.results {
		if item.ImdbID == m.selectedID {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(m.results) {
		return m, nil
	}
	m.cursor = next
	return m.selectItem(m.results[next].ImdbID)
}

func (m Model) columns() int {
	return max(1, m.width/(cardWidth+2))
}

// View renders the current UI. An open overlay is drawn centred on top of
// the screen, whichever body branch that screen is showing.
func (m Model) View() string {
	screen := m.screen()
	if m.detail == nil {
		return screen
	}

	overlay := lipgloss.JoinVertical(lipgloss.Center,
		m.detail.View(m.spinner.View()),
		m.help.ShortHelpView(m.keys.detailHelp(m.detail.closable(), m.detail.populated())),
	)
	x := max(0, (m.width-lipgloss.Width(overlay))/2)
	y := max(0, (m.height-lipgloss.Height(overlay))/2)
	return placeOverlay(x, y, overlay, screen)
}

func (m Model) screen() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("🎬 MovieSearch"))
	sb.WriteString("\n")
	sb.WriteString(mutedTextStyle.Render("Discover movies, TV series, and episodes from the world's largest movie database"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View(m.loading, m.spinner.View()))
	sb.WriteString("\n\n")
	sb.WriteString(m.body())
	sb.WriteString("\n\n")

	bindings := m.keys.inputHelp()
	if m.focus == focusGrid {
		bindings = m.keys.gridHelp()
	}
	sb.WriteString(m.help.ShortHelpView(bindings))

	return lipgloss.NewStyle().
		Width(m.width).
		AlignHorizontal(lipgloss.Center).
		MaxHeight(m.height).
		Render(sb.String())
}

// body picks exactly one of: loading, error, grid, empty state.
func (m Model) body() string {
	switch {
	case m.loading:
		return m.spinner.View() + " " + mutedTextStyle.Render("Searching for movies...")

	case m.err != "":
		return errorPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			errorStyle.Render("⚠ Search Error"),
			mutedTextStyle.Render(m.err),
		))

	case len(m.results) > 0:
		return m.grid()

	case m.hasSearched:
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			normalTextStyle.Render("No movies found"),
			mutedTextStyle.Render("Try searching with different keywords"),
		))
	}
	return ""
}

func (m Model) heading() string {
	if m.hasSearched && m.input.Value() != "" {
		return fmt.Sprintf("Results for %q", m.input.Value())
	}
	return "Popular Movies"
}

func resultCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

func (m Model) grid() string {
	cols := m.columns()

	// Keep the cursor row on screen.
	visible := max(1, (m.height-13)/cardHeight)
	first := 0
	if row := m.cursor / cols; row >= visible {
		first = row - visible + 1
	}

	var rows []string
	for r := first; r < first+visible; r++ {
		start := r * cols
		if start >= len(m.results) {
			break
		}
		end := min(start+cols, len(m.results))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.card(i).View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	header := subtitleStyle.Render(m.heading()) + "  " + mutedTextStyle.Render(resultCount(len(m.results)))
	rows = append([]string{header}, rows...)
	if m.cursor < len(m.results) {
		rows = append(rows, mutedTextStyle.Render("Poster: "+m.card(m.cursor).posterURL()))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Model) card(i int) card {
	item := m.results[i]
	return card{
		item:        item,
		selected:    m.focus == focusGrid && i == m.cursor,
		brokenImage: m.brokenPosters[item.ImdbID],
		placeholder: m.opts.CardPlaceholder,
	}
}
