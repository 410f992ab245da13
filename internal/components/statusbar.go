package components

import (
	"github.com/renato0307/onair/internal/types"
	"github.com/renato0307/onair/internal/ui"
)

// StatusBar displays status messages (success, errors, info)
type StatusBar struct {
	message     string
	messageType types.MessageType
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage sets the status message with type
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) {
	sb.message = msg
	sb.messageType = msgType
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the current message text.
func (sb *StatusBar) Message() string {
	return sb.message
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetTheme(theme *ui.Theme) {
	sb.theme = theme
}

// View renders the status bar. An empty bar still takes its line in the
// layout.
func (sb *StatusBar) View() string {
	return " " + ui.RenderMessage(sb.message, sb.messageType, sb.theme, sb.width)
}
