package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
storage:
  type: minio
jwt:
  secret: dev-secret
  expire_hours: 2
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "database", cfg.Source.Type)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout())
	assert.Equal(t, 5*time.Minute, cfg.Source.CacheTTL())
	assert.Equal(t, 2, cfg.Insights.Precision)
	assert.Equal(t, 1, cfg.Insights.SummaryPrecision)
	assert.Equal(t, 0, cfg.Insights.DifficultyPrecision)
	assert.Equal(t, 30*time.Minute, cfg.Insights.RefreshInterval())
	assert.True(t, cfg.Insights.RefreshOnStart)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, 600, cfg.CORS.MaxAgeSeconds)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window())
}

func TestLoadConfig_SourceSection(t *testing.T) {
	dir := writeConfig(t, `
storage:
  type: minio
source:
  type: http
  url: http://lms.local/export.json
  timeout_seconds: 5
insights:
  precision: 3
  refresh_on_start: false
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Source.Type)
	assert.Equal(t, "http://lms.local/export.json", cfg.Source.URL)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout())
	assert.Equal(t, 3, cfg.Insights.Precision)
	assert.False(t, cfg.Insights.RefreshOnStart)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Mode: "debug"},
			Source: SourceConfig{Type: "database"},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Server.Mode = "release"
	cfg.JWT.Secret = "short"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Source.Type = "ftp"
	assert.ErrorContains(t, cfg.Validate(), "unknown source type")

	cfg = valid()
	cfg.Source.Type = "http"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Source.Type = "object"
	cfg.Source.ObjectKey = "exports/latest.json"
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Insights.Precision = -1
	assert.Error(t, cfg.Validate())
}
