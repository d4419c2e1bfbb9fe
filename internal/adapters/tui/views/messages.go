package views

import "github.com/atotto/clipboard"

// View switching messages
type (
	SwitchToReportMsg struct{}
	SwitchToIssuesMsg struct{}
	SwitchToHelpMsg   struct{}
)

// OpenFileMsg asks the app to open a dataset file in an external program
type OpenFileMsg struct {
	Path string
}

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll
