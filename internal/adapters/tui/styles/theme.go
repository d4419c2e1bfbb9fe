package styles

import (
	"github.com/charmbracelet/lipgloss"

	"yolocheck/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Report sections
	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Label = lipgloss.NewStyle().
		Foreground(Muted)

	Value = lipgloss.NewStyle().
		Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// IssueStyle returns the style used to highlight an issue kind
func IssueStyle(kind domain.IssueKind) lipgloss.Style {
	switch kind {
	case domain.IssueOrphan:
		return WarningMsg
	case domain.IssueCorruptImage, domain.IssueMalformedAnnotation:
		return ErrorMsg
	case domain.IssueDeleteFailed:
		return ErrorMsg.Underline(true)
	default:
		return MutedText
	}
}
