package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/renato0307/onair/internal/commands"
)

// row is one line of the result list: a group header or an entry.
type row struct {
	index int // Flat index of the entry, -1 for headers
	group commands.Group
}

// rows lays out the visible window of results. A header opens every group
// and also tops the window when it starts inside a group.
func (p *Palette) rows() []row {
	if len(p.entries) == 0 {
		return nil
	}

	end := p.visibleEnd(p.offset)
	rows := make([]row, 0, (end-p.offset)*2)
	for i := p.offset; i < end; i++ {
		e := p.entries[i]
		if i == p.offset || e.FirstInGroup() {
			rows = append(rows, row{index: -1, group: e.Group})
		}
		rows = append(rows, row{index: i, group: e.Group})
	}
	return rows
}

// Width returns the outer width of the overlay.
func (p *Palette) Width() int {
	return p.width
}

// Height returns the outer height of the overlay.
func (p *Palette) Height() int {
	return listTop + len(p.body()) + 1
}

// innerWidth is the content width inside the border and padding.
func (p *Palette) innerWidth() int {
	return p.width - 4
}

// HitTest maps overlay-relative coordinates to an entry. index is -1 for
// headers, the query line and blank space; inside reports whether the point
// is on the overlay at all.
func (p *Palette) HitTest(x, y int) (index int, inside bool) {
	inside = x >= 0 && x < p.width && y >= 0 && y < p.Height()
	if !inside {
		return -1, false
	}

	rows := p.rows()
	line := y - listTop
	if line < 0 || line >= len(rows) {
		return -1, true
	}
	return rows[line].index, true
}

// View renders the overlay. A closed palette renders nothing.
func (p *Palette) View() string {
	if !p.IsOpen() {
		return ""
	}

	styles := p.theme.Palette
	lines := []string{
		p.input.View(),
		styles.Hint.Render(strings.Repeat("─", p.innerWidth())),
	}
	lines = append(lines, p.body()...)

	return styles.Box.
		Width(p.width - 2).
		Render(strings.Join(lines, "\n"))
}

func (p *Palette) body() []string {
	styles := p.theme.Palette
	width := p.innerWidth()

	if len(p.entries) == 0 {
		query := runewidth.Truncate(p.input.Value(), width-16, "…")
		lines := []string{styles.NoResults.Render(fmt.Sprintf("No results for %q", query))}
		if suggestion, ok := commands.Suggest(p.catalog, p.input.Value()); ok {
			text := runewidth.Truncate("Did you mean "+suggestion+"?", width, "…")
			lines = append(lines, styles.Suggestion.Render(text))
		}
		return lines
	}

	rows := p.rows()
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.index < 0 {
			lines = append(lines, styles.Group.Render(r.group.String()))
			continue
		}
		lines = append(lines, p.renderEntry(p.entries[r.index], r.index == p.cursor, width))
	}
	return lines
}

func (p *Palette) renderEntry(e commands.Entry, selected bool, width int) string {
	styles := p.theme.Palette

	base := styles.Item
	marker := "  "
	if selected {
		base = styles.Selected
		marker = "▶ "
	}
	match := styles.Match.Inherit(base)
	hint := styles.Hint.Inherit(base)

	var hints []string
	if e.MetaHint != "" {
		hints = append(hints, e.MetaHint)
	}
	if e.ShortcutHint != "" {
		hints = append(hints, e.ShortcutHint)
	}
	right := strings.Join(hints, "  ")
	rightWidth := runewidth.StringWidth(right)

	labelWidth := width - runewidth.StringWidth(marker) - rightWidth - 1
	label := runewidth.Truncate(e.Label, max(labelWidth, 1), "…")

	var positions []int
	labelRunes := len([]rune(label))
	for _, pos := range commands.Highlight(e.Label, p.input.Value()) {
		if pos < labelRunes {
			positions = append(positions, pos)
		}
	}

	gap := max(width-runewidth.StringWidth(marker)-runewidth.StringWidth(label)-rightWidth, 1)

	return base.Render(marker) +
		lipgloss.StyleRunes(label, positions, match, base) +
		base.Render(strings.Repeat(" ", gap)) +
		hint.Render(right)
}
