package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keyhelp/internal/diagram"
	"github.com/renato0307/keyhelp/internal/ui"
)

type Header struct {
	appName string
	source  string
	mode    diagram.Mode
	width   int
	theme   *ui.Theme
}

func NewHeader(theme *ui.Theme, appName string) *Header {
	return &Header{appName: appName, theme: theme}
}

// SetSource names the loaded catalog, e.g. "LazyVim".
func (h *Header) SetSource(source string) {
	h.source = source
}

func (h *Header) SetMode(mode diagram.Mode) {
	h.mode = mode
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	leftParts := []string{h.appName}
	if h.source != "" {
		leftParts = append(leftParts, h.source)
	}
	left := h.theme.AppTitle.Render(strings.Join(leftParts, " • "))

	right := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1).
		Render(fmt.Sprintf("mode: %s", h.mode))

	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	spacer := lipgloss.NewStyle().Width(spacing).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
