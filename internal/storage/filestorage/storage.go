package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PublicPrefix is the URL path under which stored files are served.
const PublicPrefix = "/storage"

type FileStorage interface {
	Save(ctx context.Context, src io.Reader, subPath, name string) (filePath string, fileSize int64, err error)
	Delete(ctx context.Context, filePath string) error
	URL(relativePath string) string
}

// LocalFileStorage keeps files on the local disk under baseDir.
type LocalFileStorage struct {
	baseDir string
	baseURL string
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save copies src into baseDir/subPath/name and returns the path relative
// to baseDir.
func (s *LocalFileStorage) Save(ctx context.Context, src io.Reader, subPath, name string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if name == "" || name != filepath.Base(name) {
		return "", 0, fmt.Errorf("invalid file name %q", name)
	}

	filePath := filepath.Join(s.baseDir, subPath, name)

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create directories: %w", err)
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		<-done
		_ = os.Remove(filePath)
		return "", 0, ctx.Err()
	}

	return filepath.Join(subPath, name), size, nil
}

// Delete removes a file saved under baseDir.
func (s *LocalFileStorage) Delete(ctx context.Context, filePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.baseDir, filePath))
}

// URL returns the public address of a stored file.
func (s *LocalFileStorage) URL(relativePath string) string {
	return s.baseURL + PublicPrefix + "/" + filepath.ToSlash(relativePath)
}
