package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keyhelp/internal/ui"
)

// SearchBar is the query input.
type SearchBar struct {
	input textinput.Model
	theme *ui.Theme
	width int
	count int
	total int
}

// NewSearchBar creates a focused search bar.
func NewSearchBar(theme *ui.Theme) *SearchBar {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Search shortcuts..."
	input.PromptStyle = theme.Prompt
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.Foreground)
	input.PlaceholderStyle = theme.Help
	input.Focus()

	return &SearchBar{input: input, theme: theme}
}

// Update forwards msg to the input and reports whether the query changed.
func (s *SearchBar) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s.input.Value() != before, cmd
}

// Value returns the current query.
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// Reset clears the query.
func (s *SearchBar) Reset() {
	s.input.Reset()
}

// SetCounts sets the "n/total" indicator.
func (s *SearchBar) SetCounts(count, total int) {
	s.count = count
	s.total = total
}

func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Leave room for the prompt and the counter
	s.input.Width = max(width-16, 10)
}

// GetHeight returns the height including the panel border.
func (s *SearchBar) GetHeight() int {
	return 3
}

func (s *SearchBar) View() string {
	counter := s.theme.Help.Render(fmt.Sprintf("%d/%d", s.count, s.total))
	input := s.input.View()

	content := max(s.width-4, 0)
	gap := max(content-lipgloss.Width(input)-lipgloss.Width(counter), 1)
	line := input + lipgloss.NewStyle().Width(gap).Render("") + counter

	return panel(s.theme, s.width).Render(line)
}
