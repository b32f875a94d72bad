package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/jaskcalc/internal/session"
)

// Config holds application configuration.
type Config struct {
	Calc    CalcConfig
	History HistoryConfig
	UI      UIConfig
	Log     LogConfig
}

// CalcConfig holds evaluation behaviour.
type CalcConfig struct {
	ErrorPolicy  string `mapstructure:"error_policy"`
	HistoryStyle string `mapstructure:"history_style"`
}

// HistoryConfig holds history retention settings.
type HistoryConfig struct {
	Lines   int
	Backend string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
	Width int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string
	Level string
}

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"policy":        "calc.error_policy",
	"history-style": "calc.history_style",
	"history-lines": "history.lines",
	"history":       "history.backend",
	"theme":         "ui.theme",
	"log-file":      "log.path",
	"log-level":     "log.level",
}

// Load reads configuration from defaults, file, env and flags, in rising
// priority. Env var overrides use prefix JASKCALC_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("calc.error_policy", "latch")
	v.SetDefault("calc.history_style", "expression")
	v.SetDefault("history.lines", session.DefaultHistoryLines)
	v.SetDefault("history.backend", BackendSQLite)
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.width", 36)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(Path(fs))

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path resolves the config file: the --config flag, then JASKCALC_CONFIG,
// then ~/.config/jaskcalc/config.toml.
func Path(fs *pflag.FlagSet) string {
	if fs != nil {
		if p, err := fs.GetString("config"); err == nil && p != "" {
			return p
		}
	}
	if p := os.Getenv("JASKCALC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
}

// Save writes cfg to path, creating the config directory if needed. The TUI
// uses this to remember the theme.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("calc.error_policy", cfg.Calc.ErrorPolicy)
	v.Set("calc.history_style", cfg.Calc.HistoryStyle)
	v.Set("history.lines", cfg.History.Lines)
	v.Set("history.backend", cfg.History.Backend)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SessionOptions validates the calc settings and converts them.
func (c Config) SessionOptions() (session.Options, error) {
	policy, err := session.ParsePolicy(c.Calc.ErrorPolicy)
	if err != nil {
		return session.Options{}, err
	}
	style, err := session.ParseHistoryStyle(c.Calc.HistoryStyle)
	if err != nil {
		return session.Options{}, err
	}
	if c.History.Lines < 1 {
		return session.Options{}, fmt.Errorf("history.lines must be at least 1, got %d", c.History.Lines)
	}
	return session.Options{Policy: policy, Style: style, HistoryLines: c.History.Lines}, nil
}
