package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HUD_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, 600, cfg.Window.Height)
	require.Equal(t, "hud", cfg.Window.Title)
	require.Equal(t, 60, cfg.Window.TPS)
	require.Equal(t, "Assets", cfg.Assets.Dir)
	require.Equal(t, "theme.toml", cfg.Theme.Path)
	require.True(t, cfg.Audio.Enabled)
	require.Empty(t, cfg.Log.File)
	require.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 1024
title = "demo"

[scene]
path = "menu.yaml"

[log]
level = "debug"
file = "hud.log"
`), 0o644))

	t.Setenv("HUD_CONFIG", path)
	t.Setenv("HUD_WINDOW_HEIGHT", "700")
	t.Setenv("HUD_AUDIO_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 1024, cfg.Window.Width)
	require.Equal(t, 700, cfg.Window.Height)
	require.Equal(t, "demo", cfg.Window.Title)
	require.Equal(t, "menu.yaml", cfg.Scene.Path)
	require.False(t, cfg.Audio.Enabled)
	require.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	require.Equal(t, "hud.log", cfg.Log.File)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv("HUD_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadWindow(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HUD_CONFIG", "")
	t.Setenv("HUD_WINDOW_WIDTH", "0")
	_, err := Load()
	require.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := (LogConfig{Level: tt.level}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
