package components

import (
	"fmt"
	"strings"

	"github.com/renato0307/keyhelp/internal/diagram"
	"github.com/renato0307/keyhelp/internal/notation"
	"github.com/renato0307/keyhelp/internal/ui"
)

// KeyboardPanel draws the selected shortcut on the keyboard diagram.
type KeyboardPanel struct {
	theme    *ui.Theme
	width    int
	mode     diagram.Mode
	notation string
	seq      notation.Sequence
	frame    int
}

func NewKeyboardPanel(theme *ui.Theme) *KeyboardPanel {
	return &KeyboardPanel{theme: theme}
}

// SetShortcut sets what to draw. An empty notation draws the bare keyboard.
func (k *KeyboardPanel) SetShortcut(text string, seq notation.Sequence, frame int) {
	k.notation = text
	k.seq = seq
	k.frame = frame
}

func (k *KeyboardPanel) SetMode(mode diagram.Mode) {
	k.mode = mode
}

func (k *KeyboardPanel) SetWidth(width int) {
	k.width = width
}

// GetHeight returns the height including title, legend line and border.
func (k *KeyboardPanel) GetHeight() int {
	return len(diagram.Layout(false)) + 4
}

// Title describes the panel contents, e.g. "<C-w>v • animation • frame 1/2".
func (k *KeyboardPanel) Title() string {
	if k.notation == "" {
		return "no shortcut selected"
	}
	parts := []string{k.notation, k.mode.String()}
	if k.mode == diagram.ModeAnimation && len(k.seq) > 0 {
		parts = append(parts, fmt.Sprintf("frame %d/%d", k.frame+1, len(k.seq)))
	}
	return strings.Join(parts, " • ")
}

func (k *KeyboardPanel) View() string {
	d := diagram.Render(k.mode, k.seq, k.frame)

	lines := make([]string, 0, len(d.Lines)+2)
	lines = append(lines, k.theme.AppTitle.Render(k.Title()))
	for _, line := range d.Lines {
		lines = append(lines, k.theme.RenderLine(line))
	}
	// The legend line is reserved in both modes so the panel keeps its height
	lines = append(lines, k.theme.RenderLegendBar(d.Legend))

	return panel(k.theme, k.width).Render(strings.Join(lines, "\n"))
}
