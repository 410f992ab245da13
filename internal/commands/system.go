package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/onair/internal/types"
)

// QuitCommand returns an action that quits the application
func QuitCommand() Action {
	return func() tea.Cmd {
		return tea.Quit
	}
}

// CycleThemeCommand returns an action that asks the host for the next theme.
func CycleThemeCommand() Action {
	return func() tea.Cmd {
		return func() tea.Msg {
			return types.CycleThemeMsg{}
		}
	}
}

// RecordMsgTrigger is a record trigger that emits types.RecordMsg.
func RecordMsgTrigger() tea.Cmd {
	return func() tea.Msg {
		return types.RecordMsg{}
	}
}
