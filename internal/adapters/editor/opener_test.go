package editor

import (
	"errors"
	"testing"
)

func testOpener(env map[string]string, installed ...string) *Opener {
	return &Opener{
		getenv: func(k string) string { return env[k] },
		lookPath: func(name string) (string, error) {
			for _, n := range installed {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		},
		goos: "linux",
	}
}

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		installed []string
		path      string
		wantArgs  []string
		wantErr   bool
	}{
		{
			name:     "editor with arguments",
			env:      map[string]string{"EDITOR": "code -w"},
			path:     "/ds/labels/train/a.txt",
			wantArgs: []string{"code", "-w", "/ds/labels/train/a.txt"},
		},
		{
			name:     "visual fallback",
			env:      map[string]string{"VISUAL": "hx"},
			path:     "/ds/labels/train/a.txt",
			wantArgs: []string{"hx", "/ds/labels/train/a.txt"},
		},
		{
			name:      "installed editor",
			installed: []string{"vi"},
			path:      "a.txt",
			wantArgs:  []string{"/usr/bin/vi", "a.txt"},
		},
		{
			name:      "image uses desktop viewer",
			env:       map[string]string{"EDITOR": "vim"},
			installed: []string{"xdg-open"},
			path:      "/ds/images/train/a.JPG",
			wantArgs:  []string{"/usr/bin/xdg-open", "/ds/images/train/a.JPG"},
		},
		{
			name:     "image without viewer falls back to editor",
			env:      map[string]string{"EDITOR": "vim"},
			path:     "a.png",
			wantArgs: []string{"vim", "a.png"},
		},
		{
			name:    "nothing available",
			path:    "a.txt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := testOpener(tt.env, tt.installed...).Command(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
