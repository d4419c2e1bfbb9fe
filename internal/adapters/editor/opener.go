package editor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"yolocheck/internal/domain"
	"yolocheck/internal/ports"
)

// Opener opens label files in a text editor and images in the desktop viewer
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
	goos     string
}

// Ensure Opener implements FileOpener
var _ ports.FileOpener = (*Opener)(nil)

// NewOpener creates an opener driven by $EDITOR / $VISUAL
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath, goos: runtime.GOOS}
}

// Command returns the command for viewing path
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.editorArgs()
	if domain.IsImageFile(path) {
		argv = o.viewerArgs()
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("no program found to open %s: set $EDITOR", path)
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// editorArgs splits $EDITOR or $VISUAL so values like "code -w" work
func (o *Opener) editorArgs() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(o.getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return o.firstFound("nvim", "vim", "vi", "nano")
}

func (o *Opener) viewerArgs() []string {
	switch o.goos {
	case "darwin":
		return o.firstFound("open")
	case "windows":
		return []string{"cmd", "/c", "start", ""}
	default:
		if found := o.firstFound("xdg-open"); found != nil {
			return found
		}
		// No desktop viewer; the editor at least shows the path
		return o.editorArgs()
	}
}

func (o *Opener) firstFound(names ...string) []string {
	for _, name := range names {
		if path, err := o.lookPath(name); err == nil {
			return []string{path}
		}
	}
	return nil
}
