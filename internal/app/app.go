package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keyhelp/internal/animation"
	"github.com/renato0307/keyhelp/internal/components"
	"github.com/renato0307/keyhelp/internal/diagram"
	"github.com/renato0307/keyhelp/internal/keyboard"
	"github.com/renato0307/keyhelp/internal/logging"
	"github.com/renato0307/keyhelp/internal/messages"
	"github.com/renato0307/keyhelp/internal/notation"
	"github.com/renato0307/keyhelp/internal/search"
	"github.com/renato0307/keyhelp/internal/types"
	"github.com/renato0307/keyhelp/internal/ui"
)

// PollInterval is the host loop period. Each tick advances the animation
// clock by the real time elapsed since the previous one.
const PollInterval = 50 * time.Millisecond

// AppName is shown in the header.
const AppName = "keyhelp"

// Clipboard receives the notation copied with ctrl+y.
type Clipboard interface {
	Copy(text string) error
}

// Options holds the app-wide dependencies.
type Options struct {
	Theme     *ui.Theme
	Engine    *search.Engine
	Clipboard Clipboard
	Mode      diagram.Mode
	// Source names the catalog in the header, e.g. "LazyVim".
	Source string
}

type Model struct {
	width  int
	height int

	theme     *ui.Theme
	keys      *keyboard.Keys
	help      help.Model
	engine    *search.Engine
	clipboard Clipboard

	header    *components.Header
	searchBar *components.SearchBar
	results   *components.ResultList
	panel     *components.KeyboardPanel
	statusBar *components.StatusBar
	layout    *components.Layout

	sequencer *animation.Sequencer
	mode      diagram.Mode
	lastTick  time.Time
}

func NewModel(opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = ui.ThemeCharm()
	}

	h := help.New()
	h.Styles.ShortKey = theme.Help.Bold(true)
	h.Styles.ShortDesc = theme.Help
	h.Styles.FullKey = theme.Help.Bold(true)
	h.Styles.FullDesc = theme.Help

	m := Model{
		theme:     theme,
		keys:      keyboard.Default(),
		help:      h,
		engine:    opts.Engine,
		clipboard: opts.Clipboard,
		header:    components.NewHeader(theme, AppName),
		searchBar: components.NewSearchBar(theme),
		results:   components.NewResultList(theme),
		panel:     components.NewKeyboardPanel(theme),
		statusBar: components.NewStatusBar(theme),
		layout:    components.NewLayout(80, 24),
		sequencer: animation.NewSequencer(),
		mode:      opts.Mode,
	}
	if m.engine == nil {
		m.engine = search.NewEngine(nil, 0)
	}

	m.header.SetSource(opts.Source)
	m.header.SetMode(m.mode)
	m.panel.SetMode(m.mode)
	m.resize(80, 24)
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(PollInterval, func(t time.Time) tea.Msg {
		return types.TickMsg{Time: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case types.TickMsg:
		var delta time.Duration
		if !m.lastTick.IsZero() {
			delta = max(msg.Time.Sub(m.lastTick), 0)
		}
		m.lastTick = msg.Time
		if m.sequencer.Tick(delta) {
			m.syncPanel()
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case types.StatusMsg:
		id := m.statusBar.SetMessage(msg.Message, msg.Type)
		return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
			return types.ClearStatusMsg{MessageID: id}
		})

	case types.ClearStatusMsg:
		m.statusBar.ClearMessage(msg.MessageID)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logging.Info("quit")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		if m.searchBar.Value() == "" {
			logging.Info("quit")
			return m, tea.Quit
		}
		m.searchBar.Reset()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.results.Next()
		m.syncSelection()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.results.Prev()
		m.syncSelection()
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		m.mode = m.mode.Toggle()
		m.header.SetMode(m.mode)
		m.panel.SetMode(m.mode)
		logging.Debug("diagram mode changed", "mode", m.mode.String())
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}

	changed, cmd := m.searchBar.Update(msg)
	if changed {
		m.refresh()
	}
	return m, cmd
}

// refresh re-ranks the catalog for the current query.
func (m *Model) refresh() {
	matches := m.engine.Search(m.searchBar.Value())
	m.results.SetMatches(matches)
	m.searchBar.SetCounts(len(matches), len(m.engine.Items()))
	m.syncSelection()
}

// syncSelection restarts the animation when the selected catalog item
// changes. Reselecting the same item keeps the current frame.
func (m *Model) syncSelection() {
	match, ok := m.results.Selected()
	if !ok {
		m.sequencer.Clear()
		m.panel.SetShortcut("", nil, 0)
		return
	}
	if match.Index != m.sequencer.Selection() {
		m.sequencer.SelectionChanged(match.Index, notation.Parse(match.Item.Notation))
	}
	m.syncPanel()
}

func (m *Model) syncPanel() {
	match, ok := m.results.Selected()
	if !ok {
		return
	}
	m.panel.SetShortcut(match.Item.Notation, m.sequencer.Frames(), m.sequencer.Index())
}

func (m Model) copySelected() tea.Cmd {
	match, ok := m.results.Selected()
	if !ok {
		return messages.InfoCmd("Nothing to copy")
	}
	if m.clipboard == nil {
		return messages.ErrorCmd("Copy failed: no clipboard available")
	}

	clip := m.clipboard
	text := match.Item.Notation
	return func() tea.Msg {
		if err := clip.Copy(text); err != nil {
			logging.Warn("copy failed", "notation", text, "error", err)
			return messages.ErrorCmd("Copy failed: %v", err)()
		}
		logging.Info("notation copied", "notation", text)
		return messages.SuccessCmd("Copied %s", text)()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.layout.SetSize(width, height)
	m.header.SetWidth(width)
	m.searchBar.SetWidth(width)
	m.panel.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.help.Width = width

	fixed := 1 + m.searchBar.GetHeight() + m.panel.GetHeight() +
		lipgloss.Height(m.help.View(m.keys)) + m.statusBar.GetHeight()
	m.results.SetSize(width, m.layout.CalculateResultRows(fixed))
}

func (m Model) View() string {
	return m.layout.Render(
		m.header.View(),
		m.searchBar.View(),
		m.results.View(),
		m.panel.View(),
		m.theme.Help.Padding(0, 1).Render(m.help.View(m.keys)),
		m.statusBar.View(),
	)
}
