// Package config loads onair settings from a TOML file and ONAIR_ prefixed
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ONAIR_THEME.
const EnvPrefix = "ONAIR"

// Config holds application configuration.
type Config struct {
	Theme   string
	Log     LogConfig
	Library LibraryConfig
	Palette PaletteConfig
	Studio  StudioConfig
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File       string
	Level      string
	Format     string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
}

// LibraryConfig points at the YAML file listing library items. An empty
// Path uses the built-in demo library.
type LibraryConfig struct {
	Path string
}

// PaletteConfig tunes the command palette.
type PaletteConfig struct {
	MaxItems   int           `mapstructure:"max_items"`
	FocusDelay time.Duration `mapstructure:"focus_delay"`
	Width      int
}

// StudioConfig holds studio settings.
type StudioConfig struct {
	InviteURL string `mapstructure:"invite_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "charm")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("library.path", "")
	v.SetDefault("palette.max_items", 8)
	v.SetDefault("palette.focus_delay", "16ms")
	v.SetDefault("palette.width", 64)
	v.SetDefault("studio.invite_url", "https://onair.studio/join/demo")
}

// DefaultDir returns the directory searched for config.toml.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "onair")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "onair")
}

// Load reads configuration. path, when set, must exist; otherwise
// ONAIR_CONFIG is used, then config.toml in DefaultDir if present.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
