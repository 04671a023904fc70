package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viralsweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Production())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Nil(t, cfg.Seed)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	path := writeConfig(t, `
mode: development
seed:
  hi: 1
  lo: 2
log:
  file: /tmp/sweeper.log
  max_backups: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Development())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/sweeper.log", cfg.Log.File)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, Seed{Hi: 1, Lo: 2}, *cfg.Seed)
	assert.Equal(t, "1:2", cfg.Fields()["seed"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	t.Setenv("VIRALSWEEPER_LOG_FILE", "/var/log/vs.log")
	path := writeConfig(t, "mode: production\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Development())
	assert.Equal(t, "/var/log/vs.log", cfg.Log.File)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "mode: [production"},
		{"unknown level", "log:\n  level: loud\n"},
		{"unknown mode", "mode: prod\n"},
		{"mode case", "mode: Development\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			assert.Error(t, err)
		})
	}
}
