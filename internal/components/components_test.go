package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/onair/internal/types"
	"github.com/renato0307/onair/internal/ui"
)

func TestHeader(t *testing.T) {
	h := NewHeader("onair", ui.GetTheme("charm"))
	h.SetWidth(60)
	h.SetTitle("Library")

	view := h.View()
	assert.Contains(t, view, "onair")
	assert.Contains(t, view, "Library")
	assert.NotContains(t, view, "REC")
	assert.Equal(t, 60, lipgloss.Width(view))

	h.SetRecording("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")
	view = h.View()
	assert.Contains(t, view, "● REC 1b9d6bcd")
	assert.NotContains(t, view, "bbfd")
	assert.Equal(t, 60, lipgloss.Width(view))

	h.SetRecording("")
	assert.NotContains(t, h.View(), "REC")
}

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(ui.GetTheme("charm"))
	sb.SetWidth(80)

	assert.Equal(t, " ", sb.View())

	sb.SetMessage("Invite link copied", types.MessageTypeSuccess)
	assert.Equal(t, "Invite link copied", sb.Message())
	assert.Contains(t, sb.View(), "Invite link copied")

	sb.ClearMessage()
	assert.Empty(t, sb.Message())
}

func TestLayout(t *testing.T) {
	l := NewLayout(80, 24)

	assert.Equal(t, 20, l.BodyHeight())

	x, y := l.OverlayOrigin(60)
	assert.Equal(t, 10, x)
	assert.Equal(t, 2, y)

	x, _ = l.OverlayOrigin(100)
	assert.Equal(t, 0, x)

	l.SetSize(80, 3)
	assert.Equal(t, 1, l.BodyHeight())
}

func TestLayout_Render(t *testing.T) {
	l := NewLayout(40, 10)

	view := l.Render("HEADER", "body text", "", "status", "help")
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[0], "HEADER")
	assert.Contains(t, lines[2], "body text")
	assert.Contains(t, lines[8], "status")
	assert.Contains(t, lines[9], "help")

	view = l.Render("HEADER", "body text", "OVERLAY", "status", "help")
	lines = strings.Split(view, "\n")
	assert.NotContains(t, view, "body text")
	assert.True(t, strings.HasPrefix(lines[2], strings.Repeat(" ", 16)+"OVERLAY"))
}

func TestLayout_HelpHeight(t *testing.T) {
	l := NewLayout(80, 24)

	l.SetHelpHeight(4)
	assert.Equal(t, 17, l.BodyHeight())

	l.SetHelpHeight(0)
	assert.Equal(t, 20, l.BodyHeight())
}
