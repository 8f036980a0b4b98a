// Package tui provides the interactive terminal explorer for oss-curator.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // Feed navigation
	ModeSearch             // Free-text query input
	ModeLabels             // Label picker
	ModePanel              // Saved issues panel
	ModeHelp               // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeLabels:
		return "labels"
	case ModePanel:
		return "panel"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeSearch:
		return true
	case ModeNormal, ModeLabels, ModePanel, ModeHelp:
		return false
	}
	return false
}
