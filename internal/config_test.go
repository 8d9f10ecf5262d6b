package internal

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "novaexec", cfg.AppName)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "novaexec> ", cfg.Repl.Prompt)
	require.Equal(t, 2000, cfg.Repl.HistoryMax)
	require.Equal(t, 0, cfg.Output.MaxRows)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novaexec.yaml")
	content := `app_name: demo
log:
  level: debug
  format: json
output:
  max_rows: 10
repl:
  history_path: /tmp/h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.AppName)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 10, cfg.Output.MaxRows)
	require.Equal(t, "/tmp/h", cfg.Repl.HistoryPath)
	// untouched keys keep defaults
	require.Equal(t, 2000, cfg.Repl.HistoryMax)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("NOVAEXEC_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := SetupLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	slog.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = SetupLogger(LogConfig{Level: "loud"}, &buf)
	require.Error(t, err)
	_, err = SetupLogger(LogConfig{Format: "xml"}, &buf)
	require.Error(t, err)
}
