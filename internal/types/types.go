package types

import (
	"strings"
)

// Route identifies a host screen. Library items use "library/<item id>".
type Route string

const (
	RouteStudio       Route = "studio"
	RouteLibrary      Route = "library"
	RouteMeeting      Route = "meeting"
	RouteIntegrations Route = "integrations"
	RouteAdmin        Route = "admin"
	RouteSettings     Route = "settings"
)

const itemRoutePrefix = string(RouteLibrary) + "/"

// ItemRoute returns the route that opens the library focused on one item.
func ItemRoute(itemID string) Route {
	return Route(itemRoutePrefix + itemID)
}

// Base returns the screen part of the route ("library/ep-1" -> "library").
func (r Route) Base() Route {
	if strings.HasPrefix(string(r), itemRoutePrefix) {
		return RouteLibrary
	}
	return r
}

// ItemID returns the library item id carried by the route, if any.
func (r Route) ItemID() string {
	id, ok := strings.CutPrefix(string(r), itemRoutePrefix)
	if !ok {
		return ""
	}
	return id
}

// Messages

// RouteMsg asks the host to switch screens.
type RouteMsg struct {
	Route Route
}

// RecordMsg asks the host to toggle recording.
type RecordMsg struct{}

// CycleThemeMsg asks the host to switch to the next theme.
type CycleThemeMsg struct{}

// OpenPaletteMsg asks the host to open the command palette.
type OpenPaletteMsg struct{}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

// StatusMsg is a user-facing status line update.
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status line if it still shows message ID.
type ClearStatusMsg struct {
	MessageID int
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}
