package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config is the merged CLI configuration: defaults, then the config file,
// then SPRIG_* environment variables, then flags.
type Config struct {
	Backend       string  `mapstructure:"backend"`
	Title         string  `mapstructure:"title"`
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	TPS           int     `mapstructure:"tps"`
	ShowFPS       bool    `mapstructure:"show-fps"`
	Watch         bool    `mapstructure:"watch"`
	Script        string  `mapstructure:"script"`
	ScreenshotDir string  `mapstructure:"screenshot-dir"`
	CellWidth     float64 `mapstructure:"cell-width"`
	CellHeight    float64 `mapstructure:"cell-height"`
	LogLevel      string  `mapstructure:"log-level"`
	Verbose       bool    `mapstructure:"verbose"`
}

const (
	backendEbiten = "ebiten"
	backendTerm   = "term"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", backendEbiten)
	v.SetDefault("title", "sprig")
	v.SetDefault("width", 1280)
	v.SetDefault("height", 720)
	v.SetDefault("tps", 60)
	v.SetDefault("screenshot-dir", "screenshots")
	v.SetDefault("cell-width", 10)
	v.SetDefault("cell-height", 20)
	v.SetDefault("log-level", "warn")
}

// newViper returns a viper instance with defaults and environment binding.
// SPRIG_SHOW_FPS maps to show-fps.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SPRIG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// readConfigFile loads path, or sprig.{yaml,json,toml} from the working
// directory when path is empty. A missing default file is not an error.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sprig")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func decodeConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	switch cfg.Backend {
	case backendEbiten, backendTerm:
	default:
		return Config{}, fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, backendEbiten, backendTerm)
	}
	return cfg, nil
}

// logLevel resolves the slog level; --verbose wins over log-level.
func (c Config) logLevel() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log-level: %w", err)
	}
	return lvl, nil
}
