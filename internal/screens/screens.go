// Package screens renders the host routes shown behind the command palette.
package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/onair/internal/types"
	"github.com/renato0307/onair/internal/ui"
)

// Screen is the body of one route.
type Screen interface {
	Route() types.Route
	Title() string
	Update(msg tea.Msg) tea.Cmd
	SetSize(width, height int)
	SetTheme(theme *ui.Theme)
	View() string
}

// Registry maps base routes to screens.
type Registry struct {
	screens map[types.Route]Screen
	order   []types.Route
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{screens: make(map[types.Route]Screen)}
}

// Register adds s, replacing any screen for the same route.
func (r *Registry) Register(s Screen) {
	if _, ok := r.screens[s.Route()]; !ok {
		r.order = append(r.order, s.Route())
	}
	r.screens[s.Route()] = s
}

// Get returns the screen for the route's base.
func (r *Registry) Get(route types.Route) (Screen, bool) {
	s, ok := r.screens[route.Base()]
	return s, ok
}

// All returns the screens in registration order.
func (r *Registry) All() []Screen {
	all := make([]Screen, 0, len(r.order))
	for _, route := range r.order {
		all = append(all, r.screens[route])
	}
	return all
}
