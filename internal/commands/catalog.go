package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/onair/internal/library"
	"github.com/renato0307/onair/internal/logging"
	"github.com/renato0307/onair/internal/types"
)

// RecentLimit is the number of library items listed under Recent.
const RecentLimit = 3

// Collaborators are the host hooks the catalog's commands call into.
type Collaborators struct {
	Navigate  Navigator        // Route setter; defaults to RouteMsgNavigator
	Record    func() tea.Cmd   // Record trigger; defaults to RecordMsgTrigger
	Content   library.Provider // Source of recent items; may be nil
	InviteURL string
}

// Builder assembles the palette catalog from the fixed commands and the
// content provider.
type Builder struct {
	collab     Collaborators
	actions    []Command
	navigation []Command
	system     []Command
}

// NewBuilder creates a catalog builder. The fixed commands are created once;
// only the Recent group changes between builds.
func NewBuilder(collab Collaborators) *Builder {
	if collab.Navigate == nil {
		collab.Navigate = RouteMsgNavigator
	}
	if collab.Record == nil {
		collab.Record = RecordMsgTrigger
	}

	b := &Builder{collab: collab}

	b.actions = []Command{
		{
			ID:           "action.record",
			Label:        "Record new show",
			Group:        GroupActions,
			ShortcutHint: "R",
			Invoke:       func() tea.Cmd { return collab.Record() },
		},
		{
			ID:           "action.meeting",
			Label:        "Start meeting",
			Group:        GroupActions,
			ShortcutHint: "M",
			Invoke:       NavigationCommand(collab.Navigate, types.RouteMeeting),
		},
		{
			ID:     "action.invite",
			Label:  "Copy invite link",
			Group:  GroupActions,
			Invoke: CopyInviteCommand(collab.InviteURL),
		},
	}

	for _, target := range navigationTargets {
		b.navigation = append(b.navigation, Command{
			ID:     "nav." + string(target.route),
			Label:  target.label,
			Group:  GroupNavigation,
			Invoke: NavigationCommand(collab.Navigate, target.route),
		})
	}

	b.system = []Command{
		{
			ID:     "system.theme",
			Label:  "Switch theme",
			Group:  GroupSystem,
			Invoke: CycleThemeCommand(),
		},
		{
			ID:     "system.quit",
			Label:  "Quit",
			Group:  GroupSystem,
			Invoke: QuitCommand(),
		},
	}

	return b
}

// Build returns a fresh catalog in group order. A failing content provider
// is logged and contributes no Recent commands.
func (b *Builder) Build() []Command {
	recent := b.recent()

	catalog := make([]Command, 0, len(b.actions)+len(b.navigation)+len(recent)+len(b.system))
	catalog = append(catalog, b.actions...)
	catalog = append(catalog, b.navigation...)
	catalog = append(catalog, recent...)
	catalog = append(catalog, b.system...)
	return catalog
}

func (b *Builder) recent() []Command {
	if b.collab.Content == nil {
		return nil
	}

	items, err := b.collab.Content.Items()
	if err != nil {
		logging.Warn("content provider failed", "component", "catalog", "error", err)
		return nil
	}

	recent := make([]Command, 0, RecentLimit)
	seen := make(map[string]bool, RecentLimit)
	for _, item := range items {
		if len(recent) == RecentLimit {
			break
		}
		// Command ids must stay unique; a repeated item id keeps its first entry.
		if seen[item.ID] {
			logging.Warn("duplicate library item skipped", "component", "catalog", "id", item.ID)
			continue
		}
		seen[item.ID] = true

		recent = append(recent, Command{
			ID:       "recent." + item.ID,
			Label:    item.Label,
			Group:    GroupRecentItems,
			MetaHint: item.DurationDisplay,
			Invoke:   NavigationCommand(b.collab.Navigate, types.ItemRoute(item.ID)),
		})
	}
	return recent
}
