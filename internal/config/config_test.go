package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ONAIR_CONFIG", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "charm", cfg.Theme)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Empty(t, cfg.Library.Path)
	assert.Equal(t, 8, cfg.Palette.MaxItems)
	assert.Equal(t, 16*time.Millisecond, cfg.Palette.FocusDelay)
	assert.Equal(t, 64, cfg.Palette.Width)
	assert.NotEmpty(t, cfg.Studio.InviteURL)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
theme = "nord"

[log]
file = "/tmp/onair.log"
level = "debug"
max_size_mb = 5

[library]
path = "/srv/library.yaml"

[palette]
max_items = 5
focus_delay = "100ms"

[studio]
invite_url = "https://studio.example/invite/xyz"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "/tmp/onair.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, "/srv/library.yaml", cfg.Library.Path)
	assert.Equal(t, 5, cfg.Palette.MaxItems)
	assert.Equal(t, 100*time.Millisecond, cfg.Palette.FocusDelay)
	assert.Equal(t, "https://studio.example/invite/xyz", cfg.Studio.InviteURL)
}

func TestLoad_DefaultDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("ONAIR_CONFIG", "")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "onair"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "onair", "config.toml"), []byte(`theme = "gruvbox"`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
}

func TestLoad_ConfigEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ONAIR_CONFIG", writeConfig(t, `theme = "dracula"`))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Theme)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "theme = \"nord\"\n[palette]\nmax_items = 5\n")
	t.Setenv("ONAIR_THEME", "gruvbox")
	t.Setenv("ONAIR_PALETTE_MAX_ITEMS", "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, 12, cfg.Palette.MaxItems)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "theme = "))
		assert.ErrorContains(t, err, "read config")
	})
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "onair"), DefaultDir())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/me")
	assert.Equal(t, filepath.Join("/home/me", ".config", "onair"), DefaultDir())
}
