package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/oss-curator/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color

	// Level colors
	FirstTimers  lipgloss.Color
	Intermediate lipgloss.Color
	Advanced     lipgloss.Color

	Saved lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray

	FirstTimers:  lipgloss.Color("#00B894"), // Green
	Intermediate: lipgloss.Color("#74B9FF"), // Light blue
	Advanced:     lipgloss.Color("#E17055"), // Orange

	Saved: lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Stats      lipgloss.Style
	FilterBar  lipgloss.Style
	FilterOn   lipgloss.Style

	// Issue list
	IssueList          lipgloss.Style
	IssueSelected      lipgloss.Style
	IssueTitle         lipgloss.Style
	IssueTitleSelected lipgloss.Style
	IssueMeta          lipgloss.Style
	IssueMetaSelected  lipgloss.Style
	CursorSelected     lipgloss.Style
	SavedMark          lipgloss.Style
	LoadMore           lipgloss.Style

	// Levels
	LevelFirstTimers  lipgloss.Style
	LevelIntermediate lipgloss.Style
	LevelAdvanced     lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog and panel
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Panel       lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	StatusMsg lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	DetailDesc  lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Stats: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		FilterBar: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginBottom(1),

		FilterOn: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		IssueList: lipgloss.NewStyle().
			MarginBottom(1),

		IssueSelected: lipgloss.NewStyle().
			Background(Colors.Background),

		IssueTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		IssueTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		IssueMeta: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		IssueMetaSelected: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		SavedMark: lipgloss.NewStyle().
			Foreground(Colors.Saved),

		LoadMore: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		LevelFirstTimers: lipgloss.NewStyle().
			Foreground(Colors.FirstTimers),

		LevelIntermediate: lipgloss.NewStyle().
			Foreground(Colors.Intermediate),

		LevelAdvanced: lipgloss.NewStyle().
			Foreground(Colors.Advanced),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		Panel: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Saved),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		StatusMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),

		DetailValue: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		DetailDesc: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),
	}
}

// LevelStyle returns the style for an issue level.
func (s Styles) LevelStyle(level domain.Level) lipgloss.Style {
	switch level {
	case domain.LevelFirstTimers:
		return s.LevelFirstTimers
	case domain.LevelIntermediate:
		return s.LevelIntermediate
	case domain.LevelAdvanced:
		return s.LevelAdvanced
	case domain.LevelAll:
		return s.IssueMeta
	}
	return s.IssueMeta
}
