package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keyhelp/internal/catalog"
	"github.com/renato0307/keyhelp/internal/search"
	"github.com/renato0307/keyhelp/internal/ui"
)

// ResultList shows ranked matches and owns the selection. Only the rows
// around the selection are drawn.
type ResultList struct {
	matches  []search.Match
	selected int
	rows     int
	width    int
	theme    *ui.Theme
}

func NewResultList(theme *ui.Theme) *ResultList {
	return &ResultList{theme: theme, rows: MinResultRows}
}

// SetMatches replaces the results and selects the first one.
func (r *ResultList) SetMatches(matches []search.Match) {
	r.matches = matches
	r.selected = 0
}

func (r *ResultList) Len() int {
	return len(r.matches)
}

// Next moves the selection down, wrapping to the top.
func (r *ResultList) Next() {
	if len(r.matches) == 0 {
		return
	}
	r.selected = (r.selected + 1) % len(r.matches)
}

// Prev moves the selection up, wrapping to the bottom.
func (r *ResultList) Prev() {
	if len(r.matches) == 0 {
		return
	}
	r.selected = (r.selected - 1 + len(r.matches)) % len(r.matches)
}

// Selected returns the selected match, if any.
func (r *ResultList) Selected() (search.Match, bool) {
	if len(r.matches) == 0 {
		return search.Match{}, false
	}
	return r.matches[r.selected], true
}

func (r *ResultList) SetSize(width, rows int) {
	r.width = width
	r.rows = max(rows, 1)
}

// GetHeight returns the height including the panel border.
func (r *ResultList) GetHeight() int {
	return r.rows + 2
}

// window returns the [start, end) slice of matches to draw.
func (r *ResultList) window() (int, int) {
	n := len(r.matches)
	if n <= r.rows {
		return 0, n
	}
	start := min(max(r.selected-r.rows/2, 0), n-r.rows)
	return start, start + r.rows
}

func (r *ResultList) View() string {
	content := max(r.width-4, 0)
	lines := make([]string, 0, r.rows)

	if len(r.matches) == 0 {
		lines = append(lines, r.theme.Help.Render("No matching shortcuts"))
	}

	start, end := r.window()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(r.matches[i], i == r.selected, content))
	}
	for len(lines) < r.rows {
		lines = append(lines, "")
	}

	return panel(r.theme, r.width).Render(strings.Join(lines, "\n"))
}

func (r *ResultList) renderRow(m search.Match, selected bool, width int) string {
	s := r.theme.List
	item := m.Item

	notation := s.Notation.Width(NotationColumnWidth).Render(truncate(item.Notation, NotationColumnWidth-1))
	sep := s.Separator.Render("│ ")

	tag := fmt.Sprintf("[%s]", item.Category.Label())
	if item.Mode != catalog.ModeNormal {
		tag = fmt.Sprintf("%s (%s)", tag, item.Mode)
	}
	tagWidth := lipgloss.Width(tag)

	descWidth := max(width-NotationColumnWidth-2-tagWidth-1, 0)
	desc := s.Description.Width(descWidth).Render(truncate(item.Description, descWidth))

	row := notation + sep + desc + " " + s.Category.Render(tag)
	if selected {
		return s.Selected.Width(width).Render(row)
	}
	return row
}

// truncate shortens s to width runes, ending in "…" when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
