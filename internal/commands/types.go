package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Group is the palette section a command is listed under.
type Group int

const (
	GroupActions Group = iota
	GroupNavigation
	GroupRecentItems
	GroupSystem
)

// GroupOrder is the fixed display order of the palette sections.
var GroupOrder = []Group{GroupActions, GroupNavigation, GroupRecentItems, GroupSystem}

// String returns the section heading shown in the palette.
func (g Group) String() string {
	switch g {
	case GroupActions:
		return "Actions"
	case GroupNavigation:
		return "Navigation"
	case GroupRecentItems:
		return "Recent"
	case GroupSystem:
		return "System"
	default:
		return "Other"
	}
}

// Action runs a command. The returned tea.Cmd may be nil.
type Action func() tea.Cmd

// Command is an entry in the palette catalog.
type Command struct {
	ID           string // Unique within a catalog; identity for selection
	Label        string // Display text, also the filter key
	Group        Group
	Invoke       Action
	ShortcutHint string // Optional single character shown at the right edge
	MetaHint     string // Optional short text such as a duration
}

// Entry is a command in a filtered result, with its position precomputed.
type Entry struct {
	Command
	IndexInGroup int // Position among the filtered commands of the same group
	FlatIndex    int // Position in the flattened filtered sequence
}

// FirstInGroup reports whether the entry starts its group in the result.
func (e Entry) FirstInGroup() bool {
	return e.IndexInGroup == 0
}
