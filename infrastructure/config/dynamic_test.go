package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `{"logging":{"level":"debug"},"metadata":{"version":"42"}}`)

	cfg, err := loadConfigFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "42", cfg.Metadata.Version)
	assert.NoError(t, cfg.validate())
}

func TestDynamicConfig_ValidateRejectsUnknownLevel(t *testing.T) {
	cfg := &DynamicConfig{Logging: LoggingOverrides{Level: "loud"}}
	assert.Error(t, cfg.validate())

	cfg.Logging.Level = ""
	assert.NoError(t, cfg.validate())
}

func TestNewConfigWatcher_InitialLoad(t *testing.T) {
	path := writeConfigFile(t, `{"logging":{"level":"warn"}}`)

	watcher, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Equal(t, "warn", watcher.Current().Logging.Level)
}

func TestNewConfigWatcher_MissingFile(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())
	assert.Error(t, err)
}

func TestNewConfigWatcher_RejectsInvalidInitialConfig(t *testing.T) {
	path := writeConfigFile(t, `{"logging":{"level":"loud"}}`)

	_, err := NewConfigWatcher(path, zap.NewNop())
	assert.Error(t, err)
}
