// Package config loads host settings and button themes.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds host settings.
type Config struct {
	Window WindowConfig
	Assets AssetsConfig
	Scene  SceneConfig
	Theme  ThemeConfig
	Log    LogConfig
	Audio  AudioConfig
}

// WindowConfig holds ebiten window settings.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// AssetsConfig points at the asset root (holding Textures/, Images/, Sounds/, Fonts/).
type AssetsConfig struct {
	Dir string
}

// SceneConfig selects the scene file. Empty means the built-in scene.
type SceneConfig struct {
	Path string
}

// ThemeConfig selects the theme file. Empty or missing means the built-in theme.
type ThemeConfig struct {
	Path string
}

// LogConfig holds the slog level name (debug, info, warn or error) and an
// optional file to log to instead of stderr.
type LogConfig struct {
	Level string
	File  string
}

// AudioConfig toggles the speaker.
type AudioConfig struct {
	Enabled bool
}

// Load reads configuration from file and env. Env var overrides use prefix HUD_.
// The file is HUD_CONFIG if set, otherwise hud.toml in the working directory;
// a missing file is not an error.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "hud")
	v.SetDefault("window.tps", 60)
	v.SetDefault("assets.dir", "Assets")
	v.SetDefault("scene.path", "")
	v.SetDefault("theme.path", "theme.toml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("audio.enabled", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HUD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("hud")
	}

	v.SetEnvPrefix("HUD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return c, nil
}

// SlogLevel maps the configured level name to a slog.Level. Unknown names mean info.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
