package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/ds/images/train/nested.png", 0755))
	require.NoError(t, afero.WriteFile(fs, "/ds/images/train/b.png", []byte("bb"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/ds/images/train/a.jpg", []byte("aaaa"), 0644))

	return NewStore(fs), fs
}

func TestStore_ListFiles_SkipsDirectories(t *testing.T) {
	store, _ := setupTestStore(t)

	names, err := store.ListFiles("/ds/images/train")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.png"}, names)
}

func TestStore_ListFiles_MissingDir(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.ListFiles("/ds/images/test")
	assert.Error(t, err)
}

func TestStore_DirExists(t *testing.T) {
	store, _ := setupTestStore(t)

	ok, err := store.DirExists("/ds/images/train")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.DirExists("/ds/images/train/a.jpg")
	require.NoError(t, err)
	assert.False(t, ok, "a file is not a directory")

	ok, err = store.DirExists("/ds/labels/train")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_OpenSizeRemove(t *testing.T) {
	store, fs := setupTestStore(t)
	path := "/ds/images/train/a.jpg"

	size, err := store.Size(path)
	require.NoError(t, err)
	assert.Equal(t, int64(4), size)

	f, err := store.Open(path)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "aaaa", string(data))

	require.NoError(t, store.Remove(path))
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists)

	ok, err := store.Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, store.Remove(path), os.ErrNotExist)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, filepath.Join(home, "data"), ExpandHome("~/data"))
	assert.Equal(t, "/abs/data", ExpandHome("/abs/data"))
	assert.Equal(t, "~user/data", ExpandHome("~user/data"))
}
