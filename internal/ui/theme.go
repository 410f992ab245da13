package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
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
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (hints)
	Subtle     lipgloss.AdaptiveColor // Selected row background
	Background lipgloss.AdaptiveColor // Background for overlays

	// Component styles
	AppTitle  lipgloss.Style
	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Recording lipgloss.Style
	Body      lipgloss.Style
	Table     table.Styles
	Palette   PaletteStyles
}

// PaletteStyles holds the styles the command palette renders with.
type PaletteStyles struct {
	Box         lipgloss.Style
	Group       lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Match       lipgloss.Style
	Hint        lipgloss.Style
	NoResults   lipgloss.Style
	Suggestion  lipgloss.Style
	InputPrompt lipgloss.Style
}

// finish derives the component styles from the theme colors.
func (t *Theme) finish() *Theme {
	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Recording = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	t.Body = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Padding(0, 1)

	t.Table = table.Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			BorderBottom(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Subtle).
			Bold(true),
	}

	t.Palette = PaletteStyles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		Group: lipgloss.NewStyle().
			Foreground(t.Muted).
			Bold(true),
		Item: lipgloss.NewStyle().
			Foreground(t.Foreground),
		Selected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Subtle).
			Bold(true),
		Match: lipgloss.NewStyle().
			Foreground(t.Accent).
			Underline(true),
		Hint: lipgloss.NewStyle().
			Foreground(t.Dimmed),
		NoResults: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Suggestion: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
	}

	return t
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
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "254", Dark: "236"}
	t.Background = lipgloss.AdaptiveColor{Light: "254", Dark: "235"}

	return t.finish()
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
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#44475a"}
	t.Background = lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"}

	return t.finish()
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}

	// Cool blues and grays
	t.Primary = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#434c5e"}
	t.Background = lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"}

	return t.finish()
}

// ThemeGruvbox returns a Gruvbox-inspired theme
func ThemeGruvbox() *Theme {
	t := &Theme{Name: "gruvbox"}

	// Warm retro colors
	t.Primary = lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#b16286", Dark: "#d3869b"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
	t.Error = lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"}
	t.Success = lipgloss.AdaptiveColor{Light: "#79740e", Dark: "#b8bb26"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d5c4a1", Dark: "#504945"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "#ebdbb2", Dark: "#3c3836"}
	t.Background = lipgloss.AdaptiveColor{Light: "#fbf1c7", Dark: "#282828"}

	return t.finish()
}

var themeOrder = []string{"charm", "dracula", "nord", "gruvbox"}

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
	return append([]string(nil), themeOrder...)
}

// NextTheme returns the theme after name in AvailableThemes, wrapping around.
func NextTheme(name string) *Theme {
	for i, n := range themeOrder {
		if n == name {
			return GetTheme(themeOrder[(i+1)%len(themeOrder)])
		}
	}
	return GetTheme(themeOrder[0])
}
