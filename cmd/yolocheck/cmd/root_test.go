package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yolocheck/internal/domain"
)

func TestResolveClassNames(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("nc: 2\nnames: [car, person]\n"), 0644))

	tests := []struct {
		name    string
		data    string
		classes string
		env     string
		want    []string
		wantErr bool
	}{
		{name: "default", want: domain.DefaultClassNames},
		{name: "environment", env: "a,b", want: []string{"a", "b"}},
		{name: "flag beats environment", classes: "x, y", env: "a,b", want: []string{"x", "y"}},
		{name: "data.yaml beats flag", data: yamlPath, classes: "x", want: []string{"car", "person"}},
		{name: "duplicate flag names", classes: "x,x", wantErr: true},
		{name: "missing data.yaml", data: filepath.Join(dir, "nope.yaml"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("YOLOCHECK_CLASSES", tt.env)
			dataYAML, classList = tt.data, tt.classes
			t.Cleanup(func() { dataYAML, classList = "", "" })

			got, err := resolveClassNames()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenHistory_Unset(t *testing.T) {
	historyDB, recordRuns = "", false
	h, err := openHistory()
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestOpenHistory_RecordUsesDefaultPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	historyDB, recordRuns = "", true
	t.Cleanup(func() { recordRuns = false })

	want := filepath.Join(dataHome, "yolocheck", "history.db")
	assert.Equal(t, want, historyPath())

	h, err := openHistory()
	require.NoError(t, err)
	require.NotNil(t, h)
	require.NoError(t, h.Close())
	assert.FileExists(t, want)
}

func TestHistoryPath_ExplicitDatabase(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	historyDB = "/srv/runs.db"
	t.Cleanup(func() { historyDB = "" })

	assert.Equal(t, "/srv/runs.db", historyPath())
}

func TestProgressObserver(t *testing.T) {
	var out bytes.Buffer
	p := newProgressObserver(&out)

	p.SplitStarted(domain.SplitTrain, 2)
	p.PairDone(domain.SplitTrain, domain.FilePair{Basename: "a"})
	p.PairDone(domain.SplitTrain, domain.FilePair{Basename: "b"})
	p.SplitStarted(domain.SplitTest, 0)
	p.finish()

	assert.Nil(t, p.bar)
}
