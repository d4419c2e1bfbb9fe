package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"yolocheck/internal/adapters/tui/styles"
)

// ReportKeyMap defines key bindings for the report view
type ReportKeyMap struct {
	Copy   key.Binding
	Issues key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var ReportKeys = ReportKeyMap{
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Issues: key.NewBinding(
		key.WithKeys("tab", "i"),
		key.WithHelp("tab", "issues"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// statusBarHeight is the number of lines below the viewport
const statusBarHeight = 1

// ReportModel shows the rendered report in a scrollable viewport
type ReportModel struct {
	ViewState
	title    string
	content  string
	viewport viewport.Model
}

// NewReportModel creates a report view for already rendered content
func NewReportModel(title, content string) *ReportModel {
	vp := viewport.New(80, 20)
	vp.SetContent(content)
	return &ReportModel{title: title, content: content, viewport: vp}
}

// Init initializes the report view
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report view
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ReportKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, ReportKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		case key.Matches(msg, ReportKeys.Issues):
			return m, func() tea.Msg { return SwitchToIssuesMsg{} }
		case key.Matches(msg, ReportKeys.Copy):
			if err := copyToClipboard(m.content); err != nil {
				m.SetMessage("copy failed: "+err.Error(), true)
			} else {
				m.SetMessage("report copied", false)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the report view
func (m *ReportModel) View() string {
	status := styles.StatusKey.Render(m.title) + " " + m.status("tab issues • c copy • ? help • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), styles.StatusBar.Render(status))
}

// SetSize updates the view dimensions
func (m *ReportModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = width
	m.viewport.Height = max(1, height-statusBarHeight)
}

// Content returns the report text shown in the viewport
func (m *ReportModel) Content() string {
	return m.content
}
