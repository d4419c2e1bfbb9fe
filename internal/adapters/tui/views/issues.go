package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"yolocheck/internal/adapters/tui/styles"
	"yolocheck/internal/domain"
)

// IssuesKeyMap defines key bindings for the issues view
type IssuesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Copy   key.Binding
	Open   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var IssuesKeys = IssuesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o", "open file"),
	),
	Back: key.NewBinding(
		key.WithKeys("tab", "esc"),
		key.WithHelp("tab/esc", "report"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// issueFilters is the cycle order of the kind filter; nil shows everything
var issueFilters = []*domain.IssueKind{
	nil,
	kindPtr(domain.IssueOrphan),
	kindPtr(domain.IssueCorruptImage),
	kindPtr(domain.IssueMalformedAnnotation),
	kindPtr(domain.IssueDeleteFailed),
	kindPtr(domain.IssueSplitMissing),
}

func kindPtr(k domain.IssueKind) *domain.IssueKind { return &k }

// IssuesModel lists recorded issues with a kind filter
type IssuesModel struct {
	ViewState
	issues  []domain.Issue
	visible []domain.Issue
	filter  int
	cursor  int
}

// NewIssuesModel creates the issues view
func NewIssuesModel(issues []domain.Issue) *IssuesModel {
	m := &IssuesModel{issues: issues}
	m.applyFilter()
	return m
}

// Init initializes the issues view
func (m *IssuesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the issues view
func (m *IssuesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, IssuesKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, IssuesKeys.Back):
			return m, func() tea.Msg { return SwitchToReportMsg{} }
		case key.Matches(msg, IssuesKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, IssuesKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case key.Matches(msg, IssuesKeys.Filter):
			m.filter = (m.filter + 1) % len(issueFilters)
			m.applyFilter()
		case key.Matches(msg, IssuesKeys.Open):
			if issue, ok := m.Selected(); ok && issue.Path != "" {
				return m, func() tea.Msg { return OpenFileMsg{Path: issue.Path} }
			}
		case key.Matches(msg, IssuesKeys.Copy):
			if issue, ok := m.Selected(); ok && issue.Path != "" {
				if err := copyToClipboard(issue.Path); err != nil {
					m.SetMessage("copy failed: "+err.Error(), true)
				} else {
					m.SetMessage("copied "+issue.Path, false)
				}
			}
		}
	}
	return m, nil
}

func (m *IssuesModel) applyFilter() {
	m.ClearMessage()
	m.cursor = 0
	m.visible = m.visible[:0]
	want := issueFilters[m.filter]
	for _, issue := range m.issues {
		if want == nil || issue.Kind == *want {
			m.visible = append(m.visible, issue)
		}
	}
}

// FilterName describes the active filter
func (m *IssuesModel) FilterName() string {
	if want := issueFilters[m.filter]; want != nil {
		return want.String()
	}
	return "all"
}

// Visible returns the issues matching the active filter
func (m *IssuesModel) Visible() []domain.Issue {
	return m.visible
}

// Selected returns the issue under the cursor
func (m *IssuesModel) Selected() (domain.Issue, bool) {
	if len(m.visible) == 0 {
		return domain.Issue{}, false
	}
	return m.visible[m.cursor], true
}

// View renders the issues view
func (m *IssuesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("Issues (%s: %d of %d)", m.FilterName(), len(m.visible), len(m.issues))))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(styles.MutedText.Render("  No issues."))
		b.WriteString("\n")
	}

	// Keep the cursor on screen
	rows := max(1, m.Height-5)
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(len(m.visible), start+rows)

	for i := start; i < end; i++ {
		issue := m.visible[i]
		prefix := "  "
		if i == m.cursor {
			prefix = styles.HelpKey.Render("> ")
		}
		kind := styles.IssueStyle(issue.Kind).Render(padRight(issue.Kind.String(), 21))
		b.WriteString(fmt.Sprintf("%s%s %-5s %s", prefix, kind, issue.Split, issue.Detail))
		if issue.Path != "" {
			b.WriteString(styles.MutedText.Render("  " + issue.Path))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status("f filter • o open • c copy path • tab report • q quit"))

	return styles.App.Render(b.String())
}
