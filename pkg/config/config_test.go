package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bastiangx/mdserve/pkg/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 4194304, cfg.Server.MaxDocumentBytes)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.True(t, cfg.Server.WatchConfig)
	assert.True(t, cfg.Completion.Math)
	assert.True(t, cfg.Completion.References)
	assert.True(t, cfg.Completion.Anchors)
	assert.Equal(t, symbols.DefaultEnvironments, cfg.Completion.Environments)
	assert.Equal(t, 24, cfg.CLI.DefaultLimit)

	cfg.Completion.Environments[0] = "changed"
	assert.NotEqual(t, "changed", symbols.DefaultEnvironments[0])
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
[completion]
anchors = false
environments = ["matrix", "cases"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Completion.Anchors)
	assert.True(t, cfg.Completion.Math)
	assert.Equal(t, []string{"matrix", "cases"}, cfg.Completion.Environments)
	assert.Equal(t, 4194304, cfg.Server.MaxDocumentBytes)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// max_document_bytes has the wrong type, so the typed decode fails.
	path := writeConfig(t, `
[server]
max_document_bytes = "big"
log_level = "debug"

[cli]
default_limit = 5
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 4194304, cfg.Server.MaxDocumentBytes)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.CLI.DefaultLimit)
}

func TestLoadConfigUnparseable(t *testing.T) {
	path := writeConfig(t, "[server\nthis is not toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeConfig(t, "[cli]\ndefault_limit = 3\n")

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 3, cfg.CLI.DefaultLimit)
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	assert.Len(t, cfg.EngineOptions(), 2)

	cfg.Completion.Environments = []string{"matrix"}
	assert.Len(t, cfg.EngineOptions(), 3)

	cfg.Completion.Environments = nil
	assert.Len(t, cfg.EngineOptions(), 2)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "[cli]\ndefault_limit = 1\n")

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, func(c *Config) { reloaded <- c })
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	cfg := DefaultConfig()
	cfg.CLI.DefaultLimit = 9
	require.NoError(t, SaveConfig(cfg, path))

	select {
	case got := <-reloaded:
		assert.Equal(t, 9, got.CLI.DefaultLimit)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeConfig(t, "")

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, 10*time.Millisecond, func(c *Config) { reloaded <- c })
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.toml"), []byte("x = 1"), 0644))

	select {
	case <-reloaded:
		t.Fatal("reload for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewWatcherRequiresCallback(t *testing.T) {
	_, err := NewWatcher(writeConfig(t, ""), 0, nil)
	assert.Error(t, err)
}
