package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/onair/internal/types"
	"github.com/renato0307/onair/internal/ui"
)

// Placeholder is a static screen: a title and a few lines of text.
type Placeholder struct {
	route  types.Route
	title  string
	lines  []string
	theme  *ui.Theme
	width  int
	height int
}

// NewPlaceholder creates a static screen.
func NewPlaceholder(route types.Route, title string, theme *ui.Theme, lines ...string) *Placeholder {
	return &Placeholder{route: route, title: title, theme: theme, lines: lines}
}

func (s *Placeholder) Route() types.Route        { return s.route }
func (s *Placeholder) Title() string             { return s.title }
func (s *Placeholder) Update(tea.Msg) tea.Cmd    { return nil }
func (s *Placeholder) SetTheme(theme *ui.Theme)  { s.theme = theme }
func (s *Placeholder) SetSize(width, height int) { s.width, s.height = width, height }
func (s *Placeholder) SetLines(lines ...string)  { s.lines = lines }

func (s *Placeholder) View() string {
	lines := s.lines
	if s.height > 0 && len(lines) > s.height {
		lines = lines[:s.height]
	}
	return s.theme.Body.
		Width(max(s.width, 0)).
		Render(strings.Join(lines, "\n"))
}
