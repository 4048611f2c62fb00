package components

import "time"

// UI component constants
const (
	// StatusBarDisplayDuration is how long status messages stay on screen.
	StatusBarDisplayDuration = 3 * time.Second

	// MinResultRows keeps a few results visible on short terminals.
	MinResultRows = 3

	// NotationColumnWidth is the width of the key column in the result list.
	NotationColumnWidth = 18
)
