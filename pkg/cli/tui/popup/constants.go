package popup

import "time"

// Tab identifiers, in display order
const (
	TabActions = iota
	TabPages
	TabStats
	TabSettings
)

// TabNames are the labels shown in the tab bar
var TabNames = []string{"Actions", "Pages", "Stats", "Settings"}

// DefaultWidth is the default terminal width fallback
const DefaultWidth = 80

// SavedNoticeDuration is how long the settings confirmation stays visible
const SavedNoticeDuration = 2 * time.Second

// Question box height bounds, in lines
const (
	MinQuestionHeight = 1
	MaxQuestionHeight = 6
)
