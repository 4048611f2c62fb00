package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keyhelp/internal/diagram"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Panel borders, separators
	Subtle     lipgloss.AdaptiveColor // Selected row background
	Background lipgloss.AdaptiveColor // Text drawn on coloured key caps

	// FramePalette colours legend frames; frame i uses entry i mod len.
	FramePalette []lipgloss.TerminalColor

	// Component styles
	Keyboard KeyboardStyles
	List     ListStyles
	AppTitle lipgloss.Style
	Panel    lipgloss.Style
	Prompt   lipgloss.Style
	Help     lipgloss.Style
}

// KeyboardStyles are the key cap styles used by the diagram.
type KeyboardStyles struct {
	Neutral   lipgloss.Style
	Highlight lipgloss.Style
	Leader    lipgloss.Style
	Modifier  lipgloss.Style
}

// ListStyles style the result list columns.
type ListStyles struct {
	Notation    lipgloss.Style
	Separator   lipgloss.Style
	Description lipgloss.Style
	Category    lipgloss.Style
	Mode        lipgloss.Style
	Selected    lipgloss.Style
}

// ansiPalette mirrors the classic terminal colours used by the Charm theme.
var ansiPalette = []lipgloss.TerminalColor{
	lipgloss.Color("3"),  // yellow
	lipgloss.Color("2"),  // green
	lipgloss.Color("6"),  // cyan
	lipgloss.Color("5"),  // magenta
	lipgloss.Color("1"),  // red
	lipgloss.Color("4"),  // blue
	lipgloss.Color("11"), // light yellow
	lipgloss.Color("10"), // light green
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	t := &Theme{Name: "charm"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"}

	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
	t.Background = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}

	t.FramePalette = ansiPalette

	// Key caps follow the terminal palette so they read well on any background
	t.Keyboard = KeyboardStyles{
		Neutral:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
		Leader:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
		Modifier:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5")),
	}

	applyComponentStyles(t)
	return t
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"}

	t.Border = lipgloss.AdaptiveColor{Light: "61", Dark: "61"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#d6d6e0", Dark: "#44475a"}
	t.Background = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#282a36"}

	t.FramePalette = []lipgloss.TerminalColor{
		lipgloss.Color("#f1fa8c"),
		lipgloss.Color("#50fa7b"),
		lipgloss.Color("#8be9fd"),
		lipgloss.Color("#ff79c6"),
		lipgloss.Color("#ff5555"),
		lipgloss.Color("#bd93f9"),
		lipgloss.Color("#ffb86c"),
		lipgloss.Color("#6272a4"),
	}

	t.Keyboard = KeyboardStyles{
		Neutral:   lipgloss.NewStyle().Foreground(t.Muted),
		Highlight: lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#f1fa8c")),
		Leader:    lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#8be9fd")),
		Modifier:  lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#ff79c6")),
	}

	applyComponentStyles(t)
	return t
}

// ThemeNord returns a Nord-inspired theme
// Cool, muted blues and grays
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}   // Frost blue
	t.Secondary = lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"} // Frost lighter blue
	t.Accent = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}    // Aurora purple
	t.Foreground = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#434c5e"}
	t.Background = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#2e3440"}

	t.FramePalette = []lipgloss.TerminalColor{
		lipgloss.Color("#ebcb8b"),
		lipgloss.Color("#a3be8c"),
		lipgloss.Color("#88c0d0"),
		lipgloss.Color("#b48ead"),
		lipgloss.Color("#bf616a"),
		lipgloss.Color("#5e81ac"),
		lipgloss.Color("#d08770"),
		lipgloss.Color("#8fbcbb"),
	}

	t.Keyboard = KeyboardStyles{
		Neutral:   lipgloss.NewStyle().Foreground(t.Muted),
		Highlight: lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#ebcb8b")),
		Leader:    lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#88c0d0")),
		Modifier:  lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#b48ead")),
	}

	applyComponentStyles(t)
	return t
}

// ThemeGruvbox returns a Gruvbox-inspired theme
// Warm, retro colors with brown/orange/yellow palette
func ThemeGruvbox() *Theme {
	t := &Theme{Name: "gruvbox"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"}   // Orange
	t.Secondary = lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"} // Green
	t.Accent = lipgloss.AdaptiveColor{Light: "#b16286", Dark: "#d3869b"}    // Purple
	t.Foreground = lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
	t.Error = lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"}
	t.Success = lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"}
	t.Background = lipgloss.AdaptiveColor{Light: "#282828", Dark: "#282828"}

	t.FramePalette = []lipgloss.TerminalColor{
		lipgloss.Color("#fabd2f"),
		lipgloss.Color("#b8bb26"),
		lipgloss.Color("#8ec07c"),
		lipgloss.Color("#d3869b"),
		lipgloss.Color("#fb4934"),
		lipgloss.Color("#83a598"),
		lipgloss.Color("#fe8019"),
		lipgloss.Color("#ebdbb2"),
	}

	t.Keyboard = KeyboardStyles{
		Neutral:   lipgloss.NewStyle().Foreground(t.Muted),
		Highlight: lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#fabd2f")),
		Leader:    lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#8ec07c")),
		Modifier:  lipgloss.NewStyle().Foreground(t.Background).Background(lipgloss.Color("#d3869b")),
	}

	applyComponentStyles(t)
	return t
}

// applyComponentStyles derives the list, title and panel styles from the
// theme colors.
func applyComponentStyles(t *Theme) {
	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.Prompt = lipgloss.NewStyle().Foreground(t.Warning)
	t.Help = lipgloss.NewStyle().Foreground(t.Muted)

	t.List = ListStyles{
		Notation:    lipgloss.NewStyle().Foreground(t.Secondary),
		Separator:   lipgloss.NewStyle().Foreground(t.Border),
		Description: lipgloss.NewStyle().Foreground(t.Foreground),
		Category:    lipgloss.NewStyle().Foreground(t.Warning),
		Mode:        lipgloss.NewStyle().Foreground(t.Muted),
		Selected:    lipgloss.NewStyle().Background(t.Subtle).Bold(true),
	}
}

// FrameColor returns the palette colour for a legend frame.
func (t *Theme) FrameColor(frame int) lipgloss.TerminalColor {
	if len(t.FramePalette) == 0 {
		return t.Primary
	}
	return t.FramePalette[frame%len(t.FramePalette)]
}

// KeyStyle returns the style for a diagram span.
func (t *Theme) KeyStyle(span diagram.Span) lipgloss.Style {
	switch span.Kind {
	case diagram.KindHighlight:
		return t.Keyboard.Highlight
	case diagram.KindLeader:
		return t.Keyboard.Leader
	case diagram.KindModifier:
		return t.Keyboard.Modifier
	case diagram.KindFrame:
		return lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.FrameColor(span.Frame))
	default:
		return t.Keyboard.Neutral
	}
}

// RenderLine renders a diagram line with the theme's key styles.
func (t *Theme) RenderLine(line diagram.Line) string {
	var b strings.Builder
	for _, span := range line {
		b.WriteString(t.KeyStyle(span).Render(span.Text))
	}
	return b.String()
}

// RenderLegendBar renders the legend summary. Frame segments use the palette
// colour as foreground so the bar stays readable without key caps.
func (t *Theme) RenderLegendBar(line diagram.Line) string {
	var b strings.Builder
	for _, span := range line {
		style := t.Keyboard.Neutral
		if span.Kind == diagram.KindFrame {
			style = lipgloss.NewStyle().Foreground(t.FrameColor(span.Frame)).Bold(true)
		}
		b.WriteString(style.Render(span.Text))
	}
	return b.String()
}

// GetTheme returns a theme by name, defaulting to Charm
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "nord":
		return ThemeNord()
	case "gruvbox":
		return ThemeGruvbox()
	default:
		return ThemeCharm()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "nord", "gruvbox"}
}
