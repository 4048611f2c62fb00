package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keyhelp/internal/diagram"
	"github.com/renato0307/keyhelp/internal/notation"
	"github.com/renato0307/keyhelp/internal/types"
)

func TestGetTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			theme := GetTheme(name)
			require.NotNil(t, theme)
			assert.Equal(t, name, theme.Name)
			assert.GreaterOrEqual(t, len(theme.FramePalette), 8)
		})
	}

	assert.Equal(t, "charm", GetTheme("unknown").Name)
}

func TestFrameColor_CyclesPalette(t *testing.T) {
	theme := ThemeCharm()
	n := len(theme.FramePalette)

	assert.Equal(t, theme.FramePalette[0], theme.FrameColor(0))
	assert.Equal(t, theme.FramePalette[3], theme.FrameColor(3))
	assert.Equal(t, theme.FramePalette[0], theme.FrameColor(n))
	assert.Equal(t, theme.FramePalette[1], theme.FrameColor(n+1))
}

func TestFrameColor_EmptyPalette(t *testing.T) {
	theme := &Theme{Primary: lipgloss.AdaptiveColor{Light: "1", Dark: "2"}}
	assert.Equal(t, theme.Primary, theme.FrameColor(5))
}

func TestKeyStyle(t *testing.T) {
	theme := ThemeNord()

	tests := []struct {
		kind diagram.Kind
		want lipgloss.Style
	}{
		{diagram.KindNeutral, theme.Keyboard.Neutral},
		{diagram.KindHighlight, theme.Keyboard.Highlight},
		{diagram.KindLeader, theme.Keyboard.Leader},
		{diagram.KindModifier, theme.Keyboard.Modifier},
	}
	for _, tt := range tests {
		got := theme.KeyStyle(diagram.Span{Kind: tt.kind})
		assert.Equal(t, tt.want.GetBackground(), got.GetBackground())
		assert.Equal(t, tt.want.GetForeground(), got.GetForeground())
	}

	frame := theme.KeyStyle(diagram.Span{Kind: diagram.KindFrame, Frame: 9})
	assert.Equal(t, theme.FrameColor(9), frame.GetBackground())
}

func TestRenderLine_KeepsText(t *testing.T) {
	theme := ThemeCharm()
	lines := diagram.Animate(notation.Parse("<C-w>")[0])

	for _, line := range lines {
		// Styles only add escape codes around the layout text
		rendered := theme.RenderLine(line)
		for _, span := range line {
			assert.Contains(t, rendered, strings.TrimSpace(span.Text))
		}
	}
}

func TestRenderLegendBar(t *testing.T) {
	theme := ThemeCharm()
	bar := theme.RenderLegendBar(diagram.LegendBar(notation.Parse("<C-w>v")))
	assert.Contains(t, bar, "Ctrl+W")
	assert.Contains(t, bar, "V")
}

func TestRenderMessage(t *testing.T) {
	theme := ThemeCharm()

	assert.Contains(t, RenderMessage("Copied gd", types.MessageTypeSuccess, theme, 80), "✓ Copied gd")
	assert.Contains(t, RenderMessage("boom", types.MessageTypeError, theme, 80), "✗ boom")
	assert.Contains(t, RenderMessage("hello", types.MessageTypeInfo, theme, 80), "ℹ hello")

	long := strings.Repeat("x", 200)
	out := RenderMessage(long, types.MessageTypeInfo, theme, 40)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 40))
}
