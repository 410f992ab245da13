package components

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	gapHeight    = 1 // Blank line under the header
	statusHeight = 1
)

type Layout struct {
	width      int
	height     int
	helpHeight int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:      width,
		height:     height,
		helpHeight: 1,
	}
}

// SetHelpHeight reserves lines for the help footer.
func (l *Layout) SetHelpHeight(lines int) {
	l.helpHeight = max(lines, 1)
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// BodyHeight returns the rows left for the screen body.
func (l *Layout) BodyHeight() int {
	return max(l.height-headerHeight-gapHeight-statusHeight-l.helpHeight, 1)
}

// OverlayOrigin returns the terminal cell where an overlay of the given
// width is drawn: centered horizontally, at the top of the body.
func (l *Layout) OverlayOrigin(overlayWidth int) (x, y int) {
	return max((l.width-overlayWidth)/2, 0), headerHeight + gapHeight
}

// Render stacks the regions. A non-empty overlay replaces the body.
func (l *Layout) Render(header, body, overlay, status, help string) string {
	if overlay != "" {
		x, _ := l.OverlayOrigin(lipgloss.Width(overlay))
		body = lipgloss.NewStyle().MarginLeft(x).Render(overlay)
	}

	bodyHeight := l.BodyHeight()
	body = lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, status, help)
}
