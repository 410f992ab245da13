// Package messages defines how errors and outcomes travel between the layers
// of onair.
//
// # Data layer (internal/library, internal/config)
//
// Return standard Go errors wrapped with context:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, messages.WrapError(err, "failed to read library %s", path)
//	}
//
// # Command layer (internal/commands)
//
// A command's Invoke returns a tea.Cmd. Outcomes the user should see are
// StatusMsg values produced with ErrorCmd, SuccessCmd or InfoCmd:
//
//	func CopyInviteCommand(url string) commands.Action {
//	    return func() tea.Cmd {
//	        if _, err := commands.CopyToClipboard(url); err != nil {
//	            return messages.ErrorCmd("Copy failed: %v", err)
//	        }
//	        return messages.SuccessCmd("Invite link copied")
//	    }
//	}
//
// The palette never inspects or recovers these results. A panic inside
// Invoke propagates to the Bubble Tea runtime.
//
// # UI layer (internal/app, internal/components)
//
// The host renders StatusMsg in its status line and clears it with a
// ClearStatusMsg tick. Components do not format error text themselves.
//
// # Message guidelines
//
// 1. Be specific: "Copy failed: clipboard unavailable" not "Operation failed"
// 2. Start with what failed
// 3. Keep stack traces out of the UI; they belong in the log file
package messages
