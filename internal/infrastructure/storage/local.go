package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes objects below a root directory
type LocalStorage struct {
	root string
}

// NewLocalStorage creates the uploads and outputs directories below root
func NewLocalStorage(root string) (*LocalStorage, error) {
	for _, dir := range []string{UploadsPrefix, OutputsPrefix} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", dir, err)
		}
	}
	return &LocalStorage{root: root}, nil
}

// Save writes the object to disk, replacing any existing file with the same name
func (l *LocalStorage) Save(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := l.resolve(objectName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

func (l *LocalStorage) resolve(objectName string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(objectName))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object name: %q", objectName)
	}
	return filepath.Join(l.root, clean), nil
}
