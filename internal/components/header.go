package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/onair/internal/ui"
)

type Header struct {
	appName string
	title   string
	takeID  string
	width   int
	theme   *ui.Theme
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
	}
}

func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetRecording shows the REC indicator for takeID. An empty id hides it.
func (h *Header) SetRecording(takeID string) {
	h.takeID = takeID
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) SetTheme(theme *ui.Theme) {
	h.theme = theme
}

func (h *Header) View() string {
	// Left side: "onair • Studio"
	leftParts := []string{h.theme.AppTitle.Render(h.appName)}
	if h.title != "" {
		leftParts = append(leftParts, h.theme.Header.Render(h.title))
	}
	left := strings.Join(leftParts, "• ")

	// Right side: "● REC 1b9d6bcd"
	var right string
	if h.takeID != "" {
		id := h.takeID
		if len(id) > takeIDLength {
			id = id[:takeIDLength]
		}
		right = h.theme.Recording.Render("● REC " + id)
	}

	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", spacing) + right
}
