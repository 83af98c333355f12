package logs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.log")

	cfg := &config.Config{}
	cfg.Logging.Level = "info"
	cfg.Logging.Output.File = config.FileLogConfig{Enabled: true, Path: path, MaxSizeMB: 1}
	cfg.Observability.ServiceName = "crm_backend"

	New(cfg).Info("case moved", "case_id", "abc")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"case moved"`)
	assert.Contains(t, string(b), `"service":"crm_backend"`)
}
