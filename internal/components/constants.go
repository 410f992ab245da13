package components

import "time"

const (
	// StatusBarDisplayDuration is how long a status message stays up.
	StatusBarDisplayDuration = 5 * time.Second

	// takeIDLength is how much of a take id the header shows.
	takeIDLength = 8
)
