package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/onair/internal/types"
)

// Navigator is the host's route setter.
type Navigator func(route types.Route) tea.Cmd

// navigationTargets lists the Navigation group in display order.
var navigationTargets = []struct {
	route types.Route
	label string
}{
	{types.RouteStudio, "Go to Studio"},
	{types.RouteLibrary, "Go to Library"},
	{types.RouteMeeting, "Go to Meeting Room"},
	{types.RouteIntegrations, "Go to Integrations"},
	{types.RouteAdmin, "Go to Admin"},
	{types.RouteSettings, "Go to Settings"},
}

// RouteTitle returns the display name of a route's screen.
func RouteTitle(route types.Route) string {
	base := route.Base()
	for _, target := range navigationTargets {
		if target.route == base {
			return target.label[len("Go to "):]
		}
	}
	return string(base)
}

// NavigationCommand returns an action that hands route to the navigator.
func NavigationCommand(navigate Navigator, route types.Route) Action {
	return func() tea.Cmd {
		return navigate(route)
	}
}

// RouteMsgNavigator is a Navigator that emits types.RouteMsg.
func RouteMsgNavigator(route types.Route) tea.Cmd {
	return func() tea.Msg {
		return types.RouteMsg{Route: route}
	}
}
