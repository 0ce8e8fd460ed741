package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.GRPC.MaxConnIdle)
	assert.Equal(t, 4, cfg.Upload.Parallelism)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 2*time.Minute, cfg.HTTP.ReadTimeout)
}

func TestParseFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("DB_NAME", "notes")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("UPLOAD_MAX_FILES", "3")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "notes", cfg.Database.Name)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 3, cfg.Upload.MaxFiles)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_LOG_LEVEL", "loud")
	t.Setenv("UPLOAD_MAX_FILES", "0")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPLOAD_MAX_FILES")
	assert.Contains(t, err.Error(), "loud")
}

func TestUsageListsVariables(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)

	assert.Contains(t, buf.String(), "HTTP_ADDR")
	assert.Contains(t, buf.String(), "UPLOAD_PARALLELISM")
}
