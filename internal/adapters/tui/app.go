package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"yolocheck/internal/adapters/tui/views"
	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewReport ViewState = iota
	ViewIssues
	ViewHelp
)

// App is the main TUI application model
type App struct {
	opener ports.FileOpener // nil disables opening files

	state  ViewState
	report *views.ReportModel
	issues *views.IssuesModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a TUI over a finished run. reportText is the plain rendered report.
func NewApp(title, reportText string, stats *domain.RunStatistics, opener ports.FileOpener) *App {
	return &App{
		opener: opener,
		state:  ViewReport,
		report: views.NewReportModel(title, reportText),
		issues: views.NewIssuesModel(stats.Issues),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.report.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.report.SetSize(msg.Width, msg.Height)
		a.issues.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToReportMsg:
		a.state = ViewReport
		return a, nil

	case views.SwitchToIssuesMsg:
		a.state = ViewIssues
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.OpenFileMsg:
		return a, a.openFile(msg.Path)

	case fileClosedMsg:
		if msg.err != nil {
			a.issues.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewReport:
		_, cmd = a.report.Update(msg)
	case ViewIssues:
		_, cmd = a.issues.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type fileClosedMsg struct{ err error }

func (a *App) openFile(path string) tea.Cmd {
	if a.opener == nil {
		return nil
	}

	cmd, err := a.opener.Command(path)
	if err != nil {
		return func() tea.Msg {
			return fileClosedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return fileClosedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewIssues:
		return a.issues.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.report.View()
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}
