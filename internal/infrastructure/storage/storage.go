package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Object prefixes for uploaded audio and generated documents
const (
	UploadsPrefix = "uploads"
	OutputsPrefix = "outputs"
)

// Storage persists uploaded audio and exported documents
type Storage interface {
	// Save writes the object and returns where it was stored
	Save(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// New builds the storage backend selected by configuration
func New(cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case config.StorageTypeLocal:
		return NewLocalStorage(cfg.Dir)
	case config.StorageTypeMinIO:
		return NewMinIOClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// UploadObject is the object name for an uploaded file
func UploadObject(filename string) string {
	return UploadsPrefix + "/" + filename
}

// OutputObject is the object name for an exported document
func OutputObject(filename string) string {
	return OutputsPrefix + "/" + filename
}
