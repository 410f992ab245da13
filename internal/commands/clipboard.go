package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/onair/internal/messages"
)

// writeClipboard is swapped in tests; headless machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// CopyInviteCommand copies the studio invite link.
func CopyInviteCommand(url string) Action {
	return func() tea.Cmd {
		if url == "" {
			return messages.ErrorCmd("Copy failed: no invite link configured")
		}
		if err := CopyToClipboard(url); err != nil {
			return messages.ErrorCmd("Copy failed: %v", err)
		}
		return messages.SuccessCmd("Invite link copied: %s", url)
	}
}
