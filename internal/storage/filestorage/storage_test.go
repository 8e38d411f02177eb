package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	storage "gallery_board/internal/storage/filestorage"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T) (*storage.LocalFileStorage, string) {
	t.Helper()

	dir := t.TempDir()
	fs, err := storage.NewLocalFileStorage(dir, "http://test.local/")
	require.NoError(t, err)

	return fs, dir
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs, dir := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful save", func(t *testing.T) {
		filePath, size, err := fs.Save(ctx, strings.NewReader("test content"), "uploads", "test.png")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("uploads", "test.png"), filePath)
		assert.Equal(t, int64(12), size)

		data, err := os.ReadFile(filepath.Join(dir, filePath))
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))
	})

	t.Run("save with empty subpath", func(t *testing.T) {
		filePath, _, err := fs.Save(ctx, strings.NewReader("x"), "", "root.gif")
		require.NoError(t, err)
		assert.Equal(t, "root.gif", filePath)
	})

	t.Run("rejects path in name", func(t *testing.T) {
		_, _, err := fs.Save(ctx, strings.NewReader("x"), "uploads", "../escape.png")
		assert.Error(t, err)
	})

	t.Run("save with context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := fs.Save(ctx, strings.NewReader("x"), "uploads", "cancelled.png")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("copy failure removes the file", func(t *testing.T) {
		_, _, err := fs.Save(ctx, failingReader{}, "uploads", "broken.png")
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(dir, "uploads", "broken.png"))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs, dir := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		filePath, _, err := fs.Save(ctx, strings.NewReader("content"), "", "to_delete.png")
		require.NoError(t, err)

		require.NoError(t, fs.Delete(ctx, filePath))

		_, err = os.Stat(filepath.Join(dir, filePath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		assert.Error(t, fs.Delete(ctx, "nonexistent.png"))
	})

	t.Run("delete with cancelled context keeps the file", func(t *testing.T) {
		filePath, _, err := fs.Save(ctx, strings.NewReader("content"), "", "kept.png")
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, fs.Delete(cancelled, filePath), context.Canceled)
		assert.FileExists(t, filepath.Join(dir, filePath))
	})
}

func TestLocalFileStorage_URL(t *testing.T) {
	fs, _ := setupFileStorage(t)

	assert.Equal(t, "http://test.local/storage/uploads/a.png", fs.URL(filepath.Join("uploads", "a.png")))
}

func TestNewLocalFileStorage(t *testing.T) {
	t.Run("creates base dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "files")

		fs, err := storage.NewLocalFileStorage(dir, "http://test.local")
		require.NoError(t, err)
		assert.NotNil(t, fs)
		assert.DirExists(t, dir)
	})

	t.Run("base dir under a regular file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		_, err := storage.NewLocalFileStorage(filepath.Join(file, "sub"), "http://test.local")
		assert.Error(t, err)
	})
}

func TestConcurrentSaves(t *testing.T) {
	fs, dir := setupFileStorage(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := gofakeit.UUID() + ".png"
			_, _, err := fs.Save(ctx, strings.NewReader(gofakeit.Sentence(5)), "concurrent", name)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := os.ReadDir(filepath.Join(dir, "concurrent"))
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}
