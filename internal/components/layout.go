package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keyhelp/internal/ui"
)

// Layout stacks the header, search bar, results, keyboard panel, help line
// and status bar.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{width: width, height: height}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateResultRows returns how many result rows fit once the fixed
// sections are placed. fixed is the summed height of everything else.
func (l *Layout) CalculateResultRows(fixed int) int {
	// Result panel border takes 2 lines
	return max(l.height-fixed-2, MinResultRows)
}

// Render joins the non-empty sections top to bottom.
func (l *Layout) Render(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// panel returns the theme's bordered panel sized to an outer width.
func panel(theme *ui.Theme, outer int) lipgloss.Style {
	// Width covers content and padding; the border adds one column each side
	return theme.Panel.Width(max(outer-2, 0))
}
