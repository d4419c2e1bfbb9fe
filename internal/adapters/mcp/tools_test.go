package mcp

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yolocheck/internal/adapters/filesystem"
	"yolocheck/internal/adapters/imagecheck"
	"yolocheck/internal/domain"
)

func setupDeps(t *testing.T) (Deps, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range []string{"/ds/images/train", "/ds/labels/train", "/ds/images/test", "/ds/labels/test"} {
		require.NoError(t, fs.MkdirAll(dir, 0755))
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 10, 10))))
	require.NoError(t, afero.WriteFile(fs, "/ds/images/train/a.png", buf.Bytes(), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ds/labels/train/a.txt", []byte("1 0.5 0.5 0.5 0.5\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ds/labels/test/orphan.txt", []byte(""), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ds/data.yaml", []byte("names: [cat, dog]\n"), 0644))

	return Deps{
		FS:         fs,
		Store:      filesystem.NewStore(fs),
		Decoder:    imagecheck.NewDecoder(true),
		BaseDir:    "/ds",
		ClassNames: domain.DefaultClassNames,
	}, fs
}

func callTool(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestValidateHandler_DefaultsToDryRun(t *testing.T) {
	deps, fs := setupDeps(t)

	res, err := validateHandler(deps)(context.Background(), callTool(map[string]any{}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	out := resultText(t, res)
	assert.Contains(t, out, "would remove 0 images and 1 labels")
	assert.Contains(t, out, "smartphone: 1 (100.00%)")

	ok, err := afero.Exists(fs, "/ds/labels/test/orphan.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateHandler_ApplyWithDataYAML(t *testing.T) {
	deps, fs := setupDeps(t)

	res, err := validateHandler(deps)(context.Background(), callTool(map[string]any{
		"path":      "/ds",
		"dry_run":   false,
		"data_yaml": "/ds/data.yaml",
		"verbose":   true,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	out := resultText(t, res)
	assert.Contains(t, out, "dog: 1 (100.00%)")
	assert.Contains(t, out, "[orphan] test: label without image")

	ok, err := afero.Exists(fs, "/ds/labels/test/orphan.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateHandler_InvalidClasses(t *testing.T) {
	deps, _ := setupDeps(t)

	res, err := validateHandler(deps)(context.Background(), callTool(map[string]any{"classes": "a,a"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestClassesHandler(t *testing.T) {
	deps, _ := setupDeps(t)

	res, err := classesHandler(deps)(context.Background(), callTool(map[string]any{}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "0  pistol\n1  smartphone\n")

	res, err = classesHandler(deps)(context.Background(), callTool(map[string]any{"data_yaml": "/ds/data.yaml"}))
	require.NoError(t, err)
	assert.Equal(t, "0  cat\n1  dog\n", resultText(t, res))
}

func TestHistoryHandler_WithoutDatabase(t *testing.T) {
	deps, _ := setupDeps(t)

	res, err := historyHandler(deps)(context.Background(), callTool(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "history database is required")
}
