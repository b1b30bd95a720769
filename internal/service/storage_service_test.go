package service

import (
	"context"
	"course_insights_backend/internal/config"
	"course_insights_backend/internal/util"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadThenDownload(t *testing.T) {
	storage, dir := newLocalStorage(t)
	ctx := context.Background()

	url, err := storage.Upload(ctx, "exports/events.json", strings.NewReader(`[{"chapterId":"c1"}]`), 20, util.MimeJSON)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/exports/events.json", url)
	assert.FileExists(t, filepath.Join(dir, "exports", "events.json"))

	rc, err := storage.Download(ctx, "exports/events.json")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"chapterId":"c1"}]`, string(body))

	_, err = storage.Download(ctx, "exports/missing.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewStorageService_LocalProvider(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()}}

	storage := NewStorageService(cfg)
	_, ok := storage.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}
