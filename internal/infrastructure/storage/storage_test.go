package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clientportal/internal/config"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	t.Run("upload then download", func(t *testing.T) {
		p, size, err := ls.Upload(ctx, "Report.PDF", "application/pdf", bytes.NewReader([]byte("pdf bytes")))
		require.NoError(t, err)
		assert.Equal(t, int64(9), size)
		assert.True(t, strings.HasSuffix(p, ".pdf"))
		assert.NotContains(t, p, "\\")

		rc, err := ls.Download(ctx, p)
		require.NoError(t, err)
		defer rc.Close()
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(got))
	})

	t.Run("download missing", func(t *testing.T) {
		_, err := ls.Download(ctx, "ab/cd/missing.pdf")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("rejects traversal", func(t *testing.T) {
		for _, p := range []string{"../secret", "a/../../etc/passwd", "", ".."} {
			_, err := ls.Download(ctx, p)
			assert.ErrorIs(t, err, ErrInvalidPath, p)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		p, _, err := ls.Upload(ctx, "notes.txt", "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		require.NoError(t, ls.Delete(ctx, p))
		require.NoError(t, ls.Delete(ctx, p))
		_, err = os.Stat(filepath.Join(ls.basePath, filepath.FromSlash(p)))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestNewStorage(t *testing.T) {
	s, err := NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = NewStorage(&config.StorageConfig{Mode: "azure"}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewStorage(&config.StorageConfig{Mode: "s3"}, zap.NewNop())
	assert.Error(t, err)
}
