// Package palette implements the command palette overlay: it filters a
// catalog of commands, keeps a wrapping cursor over the result and runs the
// selected command.
package palette

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/onair/internal/commands"
	"github.com/renato0307/onair/internal/keyboard"
	"github.com/renato0307/onair/internal/logging"
	"github.com/renato0307/onair/internal/ui"
)

// State is the palette lifecycle state.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// CatalogSource builds the commands offered by one palette session.
type CatalogSource interface {
	Build() []commands.Command
}

// Options tunes the palette. Zero values fall back to the defaults.
type Options struct {
	MaxItems   int           // Result rows visible at once
	FocusDelay time.Duration // Delay before the query field takes focus
	Width      int           // Maximum outer width of the overlay
}

// focusMsg moves focus to the query field of the session that scheduled it.
type focusMsg struct {
	session int
}

// Palette is the command dispatcher behind the overlay.
type Palette struct {
	state   State
	source  CatalogSource
	router  *keyboard.Router
	keys    *keyboard.Keys
	theme   *ui.Theme
	log     *logging.Logger
	release func()

	// Session
	session int
	catalog []commands.Command
	entries []commands.Entry
	input   textinput.Model
	cursor  int
	offset  int // First visible entry

	maxItems   int
	rowBudget  int // Result rows that fit on screen, 0 when unbounded
	focusDelay time.Duration
	maxWidth   int
	width      int
}

// New creates a closed palette.
func New(source CatalogSource, router *keyboard.Router, keys *keyboard.Keys, theme *ui.Theme, opts Options) *Palette {
	if opts.MaxItems <= 0 {
		opts.MaxItems = MaxPaletteItems
	}
	if opts.FocusDelay <= 0 {
		opts.FocusDelay = DefaultFocusDelay
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Type a command or search…"
	input.PromptStyle = theme.Palette.InputPrompt

	p := &Palette{
		state:      StateClosed,
		source:     source,
		router:     router,
		keys:       keys,
		theme:      theme,
		log:        logging.Get().Component("palette"),
		input:      input,
		maxItems:   opts.MaxItems,
		focusDelay: opts.FocusDelay,
		maxWidth:   opts.Width,
	}
	p.SetSize(opts.Width+minMargin, 0)
	return p
}

// Open starts a new session: the catalog is rebuilt, the query cleared and
// the cursor reset. The returned command focuses the query field after
// FocusDelay; a later Open or Close makes it a no-op. Typing before then
// focuses the field at once.
func (p *Palette) Open() tea.Cmd {
	if p.release != nil {
		p.release()
		p.release = nil
	}

	p.session++
	p.catalog = logging.TimeWithResult("build catalog", p.source.Build)
	p.input.Reset()
	p.input.Blur()
	p.refilter()
	p.state = StateOpen
	p.release = p.router.Subscribe(p.handleKey)

	p.log.Debug("palette opened", "session", p.session, "commands", len(p.catalog))

	session := p.session
	return tea.Tick(p.focusDelay, func(time.Time) tea.Msg {
		return focusMsg{session: session}
	})
}

// Close ends the session and releases the key subscription. The query is
// left as is; the next Open clears it.
func (p *Palette) Close() {
	if p.state == StateClosed {
		return
	}
	p.state = StateClosed
	if p.release != nil {
		p.release()
		p.release = nil
	}
	p.input.Blur()
	p.log.Debug("palette closed", "session", p.session)
}

// IsOpen reports whether a session is active.
func (p *Palette) IsOpen() bool {
	return p.state == StateOpen
}

// State returns the lifecycle state.
func (p *Palette) State() State {
	return p.state
}

// Query returns the current filter text.
func (p *Palette) Query() string {
	return p.input.Value()
}

// SetQuery replaces the filter text and resets the cursor.
func (p *Palette) SetQuery(query string) {
	if !p.IsOpen() {
		return
	}
	p.input.SetValue(query)
	p.refilter()
}

// Cursor returns the highlighted index in Entries.
func (p *Palette) Cursor() int {
	return p.cursor
}

// Entries returns the filtered result.
func (p *Palette) Entries() []commands.Entry {
	return p.entries
}

// Selected returns the highlighted entry, if there is one.
func (p *Palette) Selected() (commands.Entry, bool) {
	if p.cursor < 0 || p.cursor >= len(p.entries) {
		return commands.Entry{}, false
	}
	return p.entries[p.cursor], true
}

// Next moves the cursor down, wrapping from the last entry to the first.
func (p *Palette) Next() {
	n := len(p.entries)
	if !p.IsOpen() || n == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % n
	p.ensureVisible()
}

// Prev moves the cursor up, wrapping from the first entry to the last.
func (p *Palette) Prev() {
	n := len(p.entries)
	if !p.IsOpen() || n == 0 {
		return
	}
	p.cursor = (p.cursor - 1 + n) % n
	p.ensureVisible()
}

// Hover moves the cursor to the entry under the pointer.
func (p *Palette) Hover(index int) {
	if !p.IsOpen() || index < 0 || index >= len(p.entries) {
		return
	}
	p.cursor = index
	p.ensureVisible()
}

// Confirm runs the highlighted command and closes the palette. With no
// results it does nothing.
func (p *Palette) Confirm() tea.Cmd {
	entry, ok := p.Selected()
	if !p.IsOpen() || !ok {
		return nil
	}
	return p.execute(entry)
}

// Select runs the entry at index regardless of the cursor and closes the
// palette.
func (p *Palette) Select(index int) tea.Cmd {
	if !p.IsOpen() || index < 0 || index >= len(p.entries) {
		return nil
	}
	return p.execute(p.entries[index])
}

// execute closes the session on every exit path. A panic from Invoke is
// not recovered.
func (p *Palette) execute(entry commands.Entry) tea.Cmd {
	defer p.Close()

	p.log.Debug("palette execute", "session", p.session, "id", entry.ID)
	if entry.Invoke == nil {
		return nil
	}
	return entry.Invoke()
}

// Update handles focus ticks, mouse events and cursor blinks. Key presses
// arrive through the keyboard.Router subscription instead.
func (p *Palette) Update(msg tea.Msg) (*Palette, tea.Cmd) {
	switch msg := msg.(type) {
	case focusMsg:
		if !p.IsOpen() || msg.session != p.session {
			return p, nil
		}
		return p, p.input.Focus()

	case tea.MouseMsg:
		if !p.IsOpen() {
			return p, nil
		}
		return p, p.handleMouse(msg)

	case tea.KeyMsg:
		return p, nil
	}

	if !p.IsOpen() || !p.input.Focused() {
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// handleKey is the session's key subscription.
func (p *Palette) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Dismiss):
		p.Close()
		return nil
	case key.Matches(msg, p.keys.Confirm):
		return p.Confirm()
	case key.Matches(msg, p.keys.Next):
		p.Next()
		return nil
	case key.Matches(msg, p.keys.Prev):
		p.Prev()
		return nil
	}

	// The input drops keys while blurred, and the focus tick may not have
	// arrived yet.
	var focusCmd tea.Cmd
	if !p.input.Focused() {
		focusCmd = p.input.Focus()
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.refilter()
	}
	return tea.Batch(focusCmd, cmd)
}

// handleMouse expects coordinates relative to the overlay's top-left cell.
func (p *Palette) handleMouse(msg tea.MouseMsg) tea.Cmd {
	index, inside := p.HitTest(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		if index >= 0 {
			p.Hover(index)
		}
	case msg.Button == tea.MouseButtonWheelUp:
		p.Prev()
	case msg.Button == tea.MouseButtonWheelDown:
		p.Next()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			p.Close()
			return nil
		}
		if index >= 0 {
			return p.Select(index)
		}
	}
	return nil
}

// refilter recomputes the result for the current query. The cursor always
// goes back to the top.
func (p *Palette) refilter() {
	p.entries = commands.Filter(p.catalog, p.input.Value())
	p.cursor = 0
	p.offset = 0
}

// ensureVisible scrolls the window so the cursor is on screen.
func (p *Palette) ensureVisible() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	for p.cursor >= p.visibleEnd(p.offset) {
		p.offset++
	}
}

// visibleEnd returns the end of the window starting at offset: at most
// maxItems entries whose rows, headers included, fit in rowBudget. The
// first entry is always shown.
func (p *Palette) visibleEnd(offset int) int {
	lines := 0
	end := offset
	for end < len(p.entries) && end-offset < p.maxItems {
		need := 1
		if end == offset || p.entries[end].FirstInGroup() {
			need = 2
		}
		if p.rowBudget > 0 && end > offset && lines+need > p.rowBudget {
			break
		}
		lines += need
		end++
	}
	return end
}

// SetTheme swaps the palette styles.
func (p *Palette) SetTheme(theme *ui.Theme) {
	p.theme = theme
	p.input.PromptStyle = theme.Palette.InputPrompt
}

// SetSize fits the overlay to the terminal width and to the height
// available below the header. A height of 0 leaves the list at MaxItems.
func (p *Palette) SetSize(termWidth, height int) {
	p.width = max(min(p.maxWidth, termWidth-minMargin), minWidth)
	p.input.Width = p.innerWidth() - lipgloss.Width(p.input.Prompt) - 1

	p.rowBudget = 0
	if height > 0 {
		// Keep room for one header and one entry.
		p.rowBudget = max(height-listTop-1, 2)
	}
	if p.IsOpen() {
		p.ensureVisible()
	}
}
