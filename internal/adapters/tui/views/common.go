package views

import (
	"strings"

	"yolocheck/internal/adapters/tui/styles"
)

// ViewState holds the size and transient status message shared by the views
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage replaces the key hint line until the next ClearMessage
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage restores the key hint line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// status renders the pending message, or hint when there is none
func (s *ViewState) status(hint string) string {
	switch {
	case s.Message != "" && s.MessageErr:
		return styles.ErrorMsg.Render(s.Message)
	case s.Message != "":
		return styles.Success.Render(s.Message)
	default:
		return styles.HelpDesc.Render(hint)
	}
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
