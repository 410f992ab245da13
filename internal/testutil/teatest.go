// Package testutil drives a real Bubble Tea program for end-to-end tests.
package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// settle is how long Send waits for the program to process a message.
const settle = 50 * time.Millisecond

// TestProgram wraps a Bubble Tea program for testing
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	input   *fakeInput
	done    chan tea.Model
	t       *testing.T
}

// fakeInput implements io.Reader for simulating keyboard input
type fakeInput struct {
	data chan byte
}

func newFakeInput() *fakeInput {
	return &fakeInput{data: make(chan byte, 1024)}
}

func (f *fakeInput) Read(p []byte) (n int, err error) {
	select {
	case b := <-f.data:
		p[0] = b
		return 1, nil
	case <-time.After(settle):
		return 0, io.EOF
	}
}

// syncBuffer guards the output buffer; the renderer writes from its own
// goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestProgram creates a new test program with controlled I/O
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	input := newFakeInput()

	p := tea.NewProgram(
		model,
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		input:   input,
		done:    make(chan tea.Model, 1),
		t:       t,
	}

	// Start the program in the background
	go func() {
		final, err := p.Run()
		if err != nil {
			t.Logf("Program error: %v", err)
		}
		tp.done <- final
	}()

	// Give the program time to start
	time.Sleep(settle)

	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	t.Cleanup(tp.Quit)
	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(settle)
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// OpenPalette opens the command palette.
func (tp *TestProgram) OpenPalette() {
	tp.SendKey(tea.KeyCtrlK)
}

// Click sends a left click at the terminal cell x, y.
func (tp *TestProgram) Click(x, y int) {
	tp.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Hover sends pointer motion to the terminal cell x, y.
func (tp *TestProgram) Hover(x, y int) {
	tp.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
}

// Output returns the current output buffer content
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// AssertContains checks if output contains expected text
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	output := tp.Output()
	if !strings.Contains(output, expected) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, output)
	}
}

// AssertNotContains checks if output does NOT contain text
func (tp *TestProgram) AssertNotContains(notExpected string) {
	tp.t.Helper()

	output := tp.Output()
	if strings.Contains(output, notExpected) {
		tp.t.Errorf("Output should not contain %q\nGot:\n%s", notExpected, output)
	}
}

// Quit stops the program
func (tp *TestProgram) Quit() {
	tp.program.Quit()
}

// FinalModel waits for the program to exit and returns its last model.
func (tp *TestProgram) FinalModel(timeout time.Duration) tea.Model {
	tp.t.Helper()

	select {
	case m := <-tp.done:
		tp.done <- m
		return m
	case <-time.After(timeout):
		tp.t.Fatalf("program did not exit within %s", timeout)
		return nil
	}
}
