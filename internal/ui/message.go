package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/renato0307/onair/internal/types"
)

// RenderMessage renders a status message, truncated to the terminal width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := max(width-7, 20)
	text = runewidth.Truncate(text, maxMessageLength, "…")

	var color lipgloss.AdaptiveColor
	switch msgType {
	case types.MessageTypeSuccess:
		color = theme.Success
	case types.MessageTypeError:
		color = theme.Error
	default:
		color = theme.Secondary
	}

	return lipgloss.NewStyle().Foreground(color).Render("⏺ " + text)
}
