package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystem(t *testing.T) {
	ctx := context.Background()
	fs := NewFileSystem()

	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "search.json")

		ok, err := fs.Exists(ctx, path)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
		ok, err = fs.Exists(ctx, path)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("mkdir, write and read", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "e2e")
		path := filepath.Join(dir, "stache-search.e2e-spec.ts")

		require.NoError(t, fs.MkdirAll(ctx, dir))
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		require.NoError(t, fs.WriteFile(ctx, path, []byte("describe('x', () => {});")))
		data, err := fs.ReadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "describe('x', () => {});", string(data))
	})

	t.Run("write overwrites a longer file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "spec.ts")
		require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0644))

		require.NoError(t, fs.WriteFile(ctx, path, []byte("short")))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))
	})

	t.Run("remove file then empty directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "search")
		require.NoError(t, os.MkdirAll(dir, 0755))
		path := filepath.Join(dir, "search.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		require.NoError(t, fs.Remove(ctx, path))
		require.NoError(t, fs.RemoveDir(ctx, dir))

		_, err := os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("remove dir refuses a non-empty directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "search")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0644))

		assert.Error(t, fs.RemoveDir(ctx, dir))
		_, err := os.Stat(filepath.Join(dir, "other.json"))
		assert.NoError(t, err)
	})

	t.Run("read missing file", func(t *testing.T) {
		_, err := fs.ReadFile(ctx, filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}
