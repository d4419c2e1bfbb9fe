package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"yolocheck/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// reportHelp and issuesHelp adapt the view keymaps to help.KeyMap
type reportHelp struct{}

func (reportHelp) ShortHelp() []key.Binding {
	return []key.Binding{ReportKeys.Issues, ReportKeys.Help, ReportKeys.Quit}
}

func (reportHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{scrollKeys.Up, scrollKeys.Down, scrollKeys.PageUp, scrollKeys.PageDown},
		{ReportKeys.Copy, ReportKeys.Issues, ReportKeys.Help, ReportKeys.Quit},
	}
}

type issuesHelp struct{}

func (issuesHelp) ShortHelp() []key.Binding {
	return []key.Binding{IssuesKeys.Filter, IssuesKeys.Back, IssuesKeys.Quit}
}

func (issuesHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{IssuesKeys.Up, IssuesKeys.Down, IssuesKeys.Filter},
		{IssuesKeys.Open, IssuesKeys.Copy, IssuesKeys.Back, IssuesKeys.Quit},
	}
}

// scrollKeys documents the viewport's default bindings
var scrollKeys = struct {
	Up, Down, PageUp, PageDown key.Binding
}{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn/f", "page down")),
}

// HelpModel lists the key bindings of every view
type HelpModel struct {
	ViewState
	help help.Model
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.MutedText
	return &HelpModel{help: h}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToReportMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("yolocheck Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("YOLO dataset validation report"))
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Report"))
	b.WriteString("\n")
	b.WriteString(m.help.View(reportHelp{}))
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Issues"))
	b.WriteString("\n")
	b.WriteString(m.help.View(issuesHelp{}))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.help.Width = width
}
