package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds the keyhelp shortcuts. It implements help.KeyMap.
type Keys struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Diagram
	ToggleMode key.Binding

	// Actions
	Copy  key.Binding
	Clear key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// Default returns the default keyboard configuration. Printable keys are
// left free for the search query.
func Default() *Keys {
	return &Keys{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑/shift+tab", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "next"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "animation/legend"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy keys"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.ToggleMode, k.Copy, k.Clear, k.Help}
}

// FullHelp is shown after f1.
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.ToggleMode, k.Copy},
		{k.Clear, k.Quit, k.Help},
	}
}
