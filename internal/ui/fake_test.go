package ui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sebastiantruijens/moviesearch/internal/omdb"
)

const (
	testCardPlaceholder   = "https://images.unsplash.com/photo-1489599511657-70c4da5e1bce?w=300&h=450&fit=crop"
	testDetailPlaceholder = "https://images.unsplash.com/photo-1489599511657-70c4da5e1bce?w=400&h=600&fit=crop"
)

// fakeAPI records every call and answers from canned data.
type fakeAPI struct {
	mu sync.Mutex

	searches []string
	details  []string
	probes   int

	items     []omdb.Item
	searchErr error

	records   map[string]*omdb.Detail
	detailErr error

	broken []string
}

func (f *fakeAPI) Search(_ context.Context, query string) ([]omdb.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.items, nil
}

func (f *fakeAPI) Detail(_ context.Context, id string) (*omdb.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.details = append(f.details, id)
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	if d, ok := f.records[id]; ok {
		return d, nil
	}
	return nil, &omdb.APIError{Message: "Incorrect IMDb ID."}
}

func (f *fakeAPI) ProbePosters(_ context.Context, _ []omdb.Item) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probes++
	return f.broken
}

var marvelItems = []omdb.Item{
	{ImdbID: "tt0371746", Title: "Iron Man", Year: "2008", Poster: "https://m.media-amazon.com/images/M/ironman.jpg", Type: "movie"},
	{ImdbID: "tt0848228", Title: "The Avengers", Year: "2012", Poster: "https://m.media-amazon.com/images/M/avengers.jpg", Type: "movie"},
	{ImdbID: "tt3322312", Title: "Marvel's Daredevil", Year: "2015–2018", Poster: omdb.NotAvailable, Type: "series"},
}

func testDetail(id, title string) *omdb.Detail {
	return &omdb.Detail{
		ImdbID:     id,
		Title:      title,
		Year:       "2008",
		Poster:     omdb.NotAvailable,
		Type:       "movie",
		Rated:      "PG-13",
		Released:   "02 May 2008",
		Runtime:    "126 min",
		Genre:      "Action, Adventure, Sci-Fi",
		Director:   "Jon Favreau",
		Writer:     "Mark Fergus",
		Actors:     "Robert Downey Jr., Gwyneth Paltrow",
		Plot:       "After being held captive in an Afghan cave, billionaire engineer Tony Stark creates a unique weaponized suit of armor.",
		Language:   "English, Persian",
		Country:    "United States",
		Awards:     "Nominated for 2 Oscars.",
		ImdbRating: "7.9",
		ImdbVotes:  "1,100,000",
		BoxOffice:  "$319,034,126",
	}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		items: marvelItems,
		records: map[string]*omdb.Detail{
			"tt0371746": testDetail("tt0371746", "Iron Man"),
			"tt0848228": testDetail("tt0848228", "The Avengers"),
		},
	}
}

func newTestModel(api MovieAPI) Model {
	return NewModel(api, zerolog.Nop(), Options{
		DefaultQuery:      "marvel",
		CardPlaceholder:   testCardPlaceholder,
		DetailPlaceholder: testDetailPlaceholder,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

// runCmd runs cmd and feeds its message back into the model.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a model that has completed a search for "marvel".
func loaded(t *testing.T, api *fakeAPI) Model {
	t.Helper()
	m := newTestModel(api)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 80})
	m, cmd := update(t, m, startSearchMsg{query: "marvel"})
	m, _ = runCmd(t, m, cmd)
	return m
}
