package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/nearby/internal/domain"
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

	// Priority colors
	Low    lipgloss.Color
	Medium lipgloss.Color
	High   lipgloss.Color
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

	Low:    lipgloss.Color("#74B9FF"), // Light blue
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	High:   lipgloss.Color("#D63031"), // Red
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Recommendation banner
	Banner      lipgloss.Style
	BannerLabel lipgloss.Style
	BannerTask  lipgloss.Style
	BannerMuted lipgloss.Style

	// Task list
	TaskIndex          lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskMeta           lipgloss.Style
	SelectionIndicator lipgloss.Style
	Recommended        lipgloss.Style

	// Priority badges
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	// Dialogs
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	InputPrompt lipgloss.Style
	InputFocus  lipgloss.Style
	OptionOn    lipgloss.Style
	OptionOff   lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	StatusMsg lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Empty state
	EmptyState lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 3),

		Header: lipgloss.NewStyle().
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Success).
			Padding(0, 1).
			MarginBottom(1),
		BannerLabel: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),
		BannerTask: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		BannerMuted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskIndex: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),
		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.Primary),
		Recommended: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.Low),
		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.Medium),
		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.High).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			MarginBottom(1),
		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Width(12),
		InputFocus: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			Width(12),
		OptionOn: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		OptionOff: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		StatusMsg: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),
	}
}

// PriorityStyle returns the badge style for a priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityMedium:
		return s.PriorityMedium
	default:
		return s.PriorityLow
	}
}

// LocationIcon returns a short glyph for a location.
func LocationIcon(l domain.Location) string {
	switch l {
	case domain.LocationHome:
		return "⌂"
	case domain.LocationSchool:
		return "✎"
	case domain.LocationSupermarket:
		return "$"
	default:
		return "?"
	}
}
