package filesystem

import (
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("/work/dir", 0755))
	require.NoError(t, fs.WriteFile("/work/dir/a.txt", []byte("alpha"), 0644))

	t.Run("read_file", func(t *testing.T) {
		content, err := fs.ReadFile("/work/dir/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "alpha", string(content))
	})

	t.Run("read_directory_fails", func(t *testing.T) {
		_, err := fs.ReadFile("/work/dir")
		assert.Error(t, err)
	})

	t.Run("open_and_open_file", func(t *testing.T) {
		w, err := fs.OpenFile("/work/b.txt", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		require.NoError(t, err)
		_, err = w.Write([]byte("beta"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r, err := fs.Open("/work/b.txt")
		require.NoError(t, err)
		defer func() { _ = r.Close() }()
		content, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "beta", string(content))
	})

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/work/c.txt", []byte("gamma"), 0644))
		require.NoError(t, fs.Rename("/work/c.txt", "/work/dir/c.txt"))

		_, err := fs.Stat("/work/c.txt")
		assert.True(t, os.IsNotExist(err))
		info, err := fs.Lstat("/work/dir/c.txt")
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})

	t.Run("simulated_symlink", func(t *testing.T) {
		require.NoError(t, fs.Symlink("/work/dir/a.txt", "/work/link"))
		content, err := fs.ReadFile("/work/link")
		require.NoError(t, err)
		assert.Equal(t, "/work/dir/a.txt", string(content))
	})

	t.Run("remove_all", func(t *testing.T) {
		require.NoError(t, fs.RemoveAll("/work/dir"))
		_, err := fs.Stat("/work/dir/a.txt")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestNewMemory(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/x", []byte("1"), 0644))
	require.NoError(t, fs.Remove("/x"))
	_, err := fs.Stat("/x")
	assert.True(t, os.IsNotExist(err))
}
