package keyboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefault_Bindings(t *testing.T) {
	k := Default()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, k.Down},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, k.Down},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, k.Up},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, k.Up},
		{"ctrl+l", tea.KeyMsg{Type: tea.KeyCtrlL}, k.ToggleMode},
		{"ctrl+y", tea.KeyMsg{Type: tea.KeyCtrlY}, k.Copy},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, k.Clear},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, k.Help},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestDefault_LettersAreFree(t *testing.T) {
	k := Default()
	for _, r := range "abcdefghijklmnopqrstuvwxyz<>-" {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		for _, b := range []key.Binding{k.Up, k.Down, k.ToggleMode, k.Copy, k.Clear, k.Quit, k.Help} {
			assert.False(t, key.Matches(msg, b), "%q is bound", r)
		}
	}
}

func TestHelp(t *testing.T) {
	k := Default()
	assert.NotEmpty(t, k.ShortHelp())
	assert.Len(t, k.FullHelp(), 3)
}
