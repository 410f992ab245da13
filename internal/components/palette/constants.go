package palette

import "time"

// MaxPaletteItems is the number of result rows visible at once.
const MaxPaletteItems = 8

// DefaultFocusDelay lets the overlay render before the query field focuses.
const DefaultFocusDelay = 16 * time.Millisecond

// DefaultWidth is the default outer width of the overlay.
const DefaultWidth = 64

const (
	minWidth  = 30
	minMargin = 4

	// listTop is the first result row inside the overlay: top border,
	// query line, separator.
	listTop = 3
)
