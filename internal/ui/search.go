package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// searchInput is the query field and its submit control. The value is kept
// exactly as typed; only submission looks at the trimmed form.
type searchInput struct {
	input textinput.Model
}

func newSearchInput() searchInput {
	ti := textinput.New()
	ti.Placeholder = "Search for movies, series, or episodes..."
	ti.Prompt = "🎬 "
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	// Option+Backspace on macOS terminals arrives as alt+backspace.
	ti.KeyMap.DeleteWordBackward = key.NewBinding(
		key.WithKeys("alt+backspace", "ctrl+w"),
	)

	return searchInput{input: ti}
}

func (s searchInput) Value() string {
	return s.input.Value()
}

// canSubmit reports whether the submit control is enabled.
func (s searchInput) canSubmit(loading bool) bool {
	return !loading && strings.TrimSpace(s.input.Value()) != ""
}

func (s *searchInput) focus() tea.Cmd {
	return s.input.Focus()
}

func (s *searchInput) blur() {
	s.input.Blur()
}

func (s searchInput) focused() bool {
	return s.input.Focused()
}

func (s *searchInput) setWidth(width int) {
	w := width - 24
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	s.input.Width = w
}

func (s searchInput) Update(msg tea.Msg) (searchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s searchInput) View(loading bool, spinner string) string {
	box := inputStyle
	if s.focused() {
		box = focusedInputStyle
	}

	label := "Search"
	if loading {
		label = spinner + " Search"
	}
	button := submitStyle.Render(label)
	if !s.canSubmit(loading) {
		button = disabledSubmitStyle.Render(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, box.Render(s.input.View()), " ", button)
}
