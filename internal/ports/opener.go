package ports

import "os/exec"

// FileOpener builds the external command that shows a dataset file to the user
type FileOpener interface {
	// Command returns an exec.Cmd for opening path. It is run through
	// bubbletea's ExecProcess so the terminal is handed over.
	Command(path string) (*exec.Cmd, error)
}
