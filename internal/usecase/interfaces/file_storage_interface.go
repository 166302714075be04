package interfaces

//go:generate mockgen -source=$GOFILE -destination=mocks/file_storage_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound is returned by Download and Delete for unknown paths.
var ErrFileNotFound = errors.New("file not found")

// IFileStorage stores uploaded portal content files.
type IFileStorage interface {
	Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, int64, error)
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)
	Delete(ctx context.Context, storagePath string) error
}
