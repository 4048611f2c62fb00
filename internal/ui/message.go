package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keyhelp/internal/types"
)

// RenderMessage renders a status message on a coloured bar. Long messages
// are truncated to fit width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, width int) string {
	base := lipgloss.NewStyle().Width(width).Padding(0, 1)
	if text == "" {
		return base.Render("")
	}

	maxLen := max(width-6, 20)
	if r := []rune(text); len(r) > maxLen {
		text = string(r[:maxLen-1]) + "…"
	}

	var bg lipgloss.AdaptiveColor
	var prefix string
	switch msgType {
	case types.MessageTypeSuccess:
		bg, prefix = theme.Success, "✓ "
	case types.MessageTypeError:
		bg, prefix = theme.Error, "✗ "
	default:
		bg, prefix = theme.Primary, "ℹ "
	}

	return base.
		Background(bg).
		Foreground(theme.Background).
		Bold(true).
		Render(prefix + text)
}
