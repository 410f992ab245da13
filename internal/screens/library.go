package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/onair/internal/library"
	"github.com/renato0307/onair/internal/logging"
	"github.com/renato0307/onair/internal/types"
	"github.com/renato0307/onair/internal/ui"
)

const (
	durationColumnWidth = 10
	idColumnWidth       = 12
)

// Library lists the studio's recorded content.
type Library struct {
	provider library.Provider
	theme    *ui.Theme
	table    table.Model
	items    []library.Item
	err      error
	width    int
	height   int
}

// NewLibrary creates the library screen. Call Reload to fetch items.
func NewLibrary(provider library.Provider, theme *ui.Theme) *Library {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(theme.Table)

	s := &Library{provider: provider, theme: theme, table: t}
	s.SetSize(80, 12)
	return s
}

func (s *Library) Route() types.Route { return types.RouteLibrary }
func (s *Library) Title() string      { return "Library" }

// Reload fetches the items again. On error the previous rows are cleared
// and the error is shown in place of the table.
func (s *Library) Reload() error {
	items, err := s.provider.Items()
	if err != nil {
		s.err = err
		s.items = nil
		s.table.SetRows(nil)
		logging.Warn("library reload failed", "error", err)
		return err
	}

	s.err = nil
	s.items = items
	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = table.Row{item.Label, item.DurationDisplay, item.ID}
	}
	s.table.SetRows(rows)
	if s.table.Cursor() >= len(rows) {
		s.table.SetCursor(0)
	}
	return nil
}

// Focus moves the cursor to the item with id. It reports false if the item
// is not listed.
func (s *Library) Focus(id string) bool {
	for i, item := range s.items {
		if item.ID == id {
			s.table.SetCursor(i)
			return true
		}
	}
	return false
}

// Selected returns the item under the cursor.
func (s *Library) Selected() (library.Item, bool) {
	cursor := s.table.Cursor()
	if cursor < 0 || cursor >= len(s.items) {
		return library.Item{}, false
	}
	return s.items[cursor], true
}

func (s *Library) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return cmd
}

func (s *Library) SetTheme(theme *ui.Theme) {
	s.theme = theme
	s.table.SetStyles(theme.Table)
}

func (s *Library) SetSize(width, height int) {
	s.width, s.height = width, height

	// Cell padding is one column on each side.
	title := max(width-durationColumnWidth-idColumnWidth-6, 10)
	s.table.SetColumns([]table.Column{
		{Title: "Title", Width: title},
		{Title: "Duration", Width: durationColumnWidth},
		{Title: "ID", Width: idColumnWidth},
	})
	s.table.SetWidth(width)
	s.table.SetHeight(max(height, 3))
}

func (s *Library) View() string {
	switch {
	case s.err != nil:
		return ui.RenderMessage(fmt.Sprintf("Library unavailable: %v", s.err), types.MessageTypeError, s.theme, s.width)
	case len(s.items) == 0:
		return s.theme.Body.Render("The library is empty.")
	}
	return s.table.View()
}
