// Package app is the onair host: route screens, the command palette overlay
// and the recording state.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/renato0307/onair/internal/commands"
	"github.com/renato0307/onair/internal/components"
	"github.com/renato0307/onair/internal/components/palette"
	"github.com/renato0307/onair/internal/keyboard"
	"github.com/renato0307/onair/internal/library"
	"github.com/renato0307/onair/internal/logging"
	"github.com/renato0307/onair/internal/messages"
	"github.com/renato0307/onair/internal/screens"
	"github.com/renato0307/onair/internal/types"
	"github.com/renato0307/onair/internal/ui"
)

const appName = "onair"

// Options configures the host.
type Options struct {
	Theme     string
	Content   library.Provider // Defaults to library.Demo()
	InviteURL string
	Palette   palette.Options

	// Shown on the settings screen.
	LibraryPath string
	LogFile     string

	// NewTakeID names recordings; defaults to uuid.NewString.
	NewTakeID func() string
}

type Model struct {
	width  int
	height int
	route  types.Route
	theme  *ui.Theme
	opts   Options

	keys     *keyboard.Keys
	router   *keyboard.Router
	palette  *palette.Palette
	registry *screens.Registry
	screen   screens.Screen
	studio   *screens.Placeholder
	settings *screens.Placeholder
	library  *screens.Library
	header   *components.Header
	status   *components.StatusBar
	layout   *components.Layout
	help     help.Model

	takeID   string // Current recording; empty when idle
	statusID int
}

func NewModel(opts Options) Model {
	if opts.Content == nil {
		opts.Content = library.Demo()
	}
	if opts.NewTakeID == nil {
		opts.NewTakeID = uuid.NewString
	}

	theme := ui.GetTheme(opts.Theme)
	keys := keyboard.Default()
	router := keyboard.NewRouter()

	builder := commands.NewBuilder(commands.Collaborators{
		Navigate:  commands.RouteMsgNavigator,
		Record:    commands.RecordMsgTrigger,
		Content:   opts.Content,
		InviteURL: opts.InviteURL,
	})

	m := Model{
		width:   80,
		height:  24,
		theme:   theme,
		opts:    opts,
		keys:    keys,
		router:  router,
		palette: palette.New(builder, router, keys, theme, opts.Palette),
		header:  components.NewHeader(appName, theme),
		status:  components.NewStatusBar(theme),
		layout:  components.NewLayout(80, 24),
		help:    help.New(),
	}

	m.studio = screens.NewPlaceholder(types.RouteStudio, commands.RouteTitle(types.RouteStudio), theme)
	m.settings = screens.NewPlaceholder(types.RouteSettings, commands.RouteTitle(types.RouteSettings), theme)
	m.library = screens.NewLibrary(opts.Content, theme)

	m.registry = screens.NewRegistry()
	m.registry.Register(m.studio)
	m.registry.Register(m.library)
	m.registry.Register(screens.NewPlaceholder(types.RouteMeeting, commands.RouteTitle(types.RouteMeeting), theme,
		"The meeting room is empty.",
		"Share the invite link from the command palette to bring guests in."))
	m.registry.Register(screens.NewPlaceholder(types.RouteIntegrations, commands.RouteTitle(types.RouteIntegrations), theme,
		"Calendar and storage integrations are managed from the web studio."))
	m.registry.Register(screens.NewPlaceholder(types.RouteAdmin, commands.RouteTitle(types.RouteAdmin), theme,
		"Workspace members, roles and billing."))
	m.registry.Register(m.settings)

	m.updateStudio()
	m.updateSettings()
	m.applyTheme(theme)
	m.switchScreen(types.RouteStudio, m.studio)
	m.resize(80, 24)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(appName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// The palette owns the keyboard while it is open.
		if cmd, handled := m.router.Dispatch(msg); handled {
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.palette.IsOpen() {
			return m, nil
		}
		x, y := m.layout.OverlayOrigin(m.palette.Width())
		msg.X -= x
		msg.Y -= y
		_, cmd := m.palette.Update(msg)
		return m, cmd

	case types.OpenPaletteMsg:
		return m, m.palette.Open()

	case types.RouteMsg:
		return m, m.navigate(msg.Route)

	case types.RecordMsg:
		return m, m.toggleRecording()

	case types.CycleThemeMsg:
		m.applyTheme(ui.NextTheme(m.theme.Name))
		m.updateSettings()
		return m, messages.InfoCmd("Theme: %s", m.theme.Name)

	case types.StatusMsg:
		m.statusID++
		m.status.SetMessage(msg.Message, msg.Type)
		id := m.statusID
		return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
			return types.ClearStatusMsg{MessageID: id}
		})

	case types.ClearStatusMsg:
		if msg.MessageID == m.statusID {
			m.status.ClearMessage()
		}
		return m, nil
	}

	// Focus ticks and cursor blinks.
	_, cmd := m.palette.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.OpenPalette):
		return m, m.palette.Open()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Record):
		return m, m.toggleRecording()
	case key.Matches(msg, m.keys.Meeting):
		return m, m.navigate(types.RouteMeeting)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	}
	return m, m.screen.Update(msg)
}

func (m *Model) navigate(route types.Route) tea.Cmd {
	screen, ok := m.registry.Get(route)
	if !ok {
		logging.Warn("unknown route", "route", route)
		return messages.ErrorCmd("Unknown route %q", route)
	}

	if route.Base() == types.RouteLibrary {
		if err := m.library.Reload(); err != nil {
			m.switchScreen(route, screen)
			return messages.ErrorCmd("Library unavailable: %v", err)
		}
		if id := route.ItemID(); id != "" && !m.library.Focus(id) {
			m.switchScreen(route, screen)
			return messages.ErrorCmd("%s is no longer in the library", id)
		}
	}

	m.switchScreen(route, screen)
	return nil
}

func (m *Model) switchScreen(route types.Route, screen screens.Screen) {
	logging.Info("navigate", "route", route)
	m.route = route
	m.screen = screen
	m.header.SetTitle(screen.Title())
	screen.SetSize(m.width, m.layout.BodyHeight())
}

func (m *Model) toggleRecording() tea.Cmd {
	if m.takeID != "" {
		take := m.takeID
		m.takeID = ""
		m.header.SetRecording("")
		m.updateStudio()
		logging.Info("recording stopped", "take", take)
		return messages.InfoCmd("Recording stopped (take %s)", shortID(take))
	}

	m.takeID = m.opts.NewTakeID()
	m.header.SetRecording(m.takeID)
	m.updateStudio()
	logging.Info("recording started", "take", m.takeID)
	return messages.SuccessCmd("Recording started (take %s)", shortID(m.takeID))
}

func (m *Model) updateStudio() {
	if m.takeID != "" {
		m.studio.SetLines(
			"Recording take "+m.takeID,
			"Press R again to stop.",
		)
		return
	}
	m.studio.SetLines(
		"The studio is idle.",
		"Press R to record a new show, or ctrl+k for every command.",
	)
}

func (m *Model) updateSettings() {
	libraryPath := m.opts.LibraryPath
	if libraryPath == "" {
		libraryPath = "built-in demo library"
	}
	logFile := m.opts.LogFile
	if logFile == "" {
		logFile = "disabled"
	}
	m.settings.SetLines(
		"Theme:    "+m.theme.Name,
		"Library:  "+libraryPath,
		"Log file: "+logFile,
	)
}

func (m *Model) applyTheme(theme *ui.Theme) {
	m.theme = theme
	m.palette.SetTheme(theme)
	m.header.SetTheme(theme)
	m.status.SetTheme(theme)
	for _, s := range m.registry.All() {
		s.SetTheme(theme)
	}

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Primary)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Dimmed)
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
	m.help.Styles.FullSeparator = m.help.Styles.ShortSeparator
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.layout.SetSize(width, height)
	m.header.SetWidth(width)
	m.status.SetWidth(width)
	m.help.Width = width
	m.layout.SetHelpHeight(lipgloss.Height(m.help.View(keyboard.GlobalHelp{Keys: m.keys})))
	m.palette.SetSize(width, m.layout.BodyHeight())
	m.screen.SetSize(width, m.layout.BodyHeight())
}

// helpView shows only the short palette help while the palette is open.
func (m Model) helpView() string {
	if m.palette.IsOpen() {
		return m.help.ShortHelpView(keyboard.PaletteHelp{Keys: m.keys}.ShortHelp())
	}
	return m.help.View(keyboard.GlobalHelp{Keys: m.keys})
}

func (m Model) View() string {
	return m.layout.Render(
		m.header.View(),
		m.screen.View(),
		m.palette.View(),
		m.status.View(),
		m.helpView(),
	)
}

// Route returns the current route.
func (m Model) Route() types.Route { return m.route }

// Recording returns the current take id, empty when not recording.
func (m Model) Recording() string { return m.takeID }

// Palette returns the command palette.
func (m Model) Palette() *palette.Palette { return m.palette }

// Theme returns the active theme.
func (m Model) Theme() *ui.Theme { return m.theme }

// StatusMessage returns the text on the status line.
func (m Model) StatusMessage() string { return m.status.Message() }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
