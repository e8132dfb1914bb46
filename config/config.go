// Package config loads user settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds user settings. Zero-valued fields in a file keep their
// defaults.
type Config struct {
	TabWidth        int      `toml:"tab_width"`
	LineNumbers     bool     `toml:"line_numbers"`
	CaseSensitive   bool     `toml:"case_sensitive"`
	Regex           bool     `toml:"regex"`
	MatchTimeout    Duration `toml:"match_timeout"`
	Theme           string   `toml:"theme"`
	SystemClipboard bool     `toml:"system_clipboard"`
	PreviewLength   int      `toml:"preview_length"`
	LogFile         string   `toml:"log_file"`
	LogLevel        string   `toml:"log_level"`
}

// Duration is a time.Duration written as a string ("2s", "500ms").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth:        4,
		LineNumbers:     true,
		MatchTimeout:    Duration{2 * time.Second},
		Theme:           "monokai",
		SystemClipboard: true,
		PreviewLength:   50,
		LogLevel:        "info",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quill", "config.toml"), nil
}

// Load reads path over the defaults. When path is empty the default location
// is used and a missing file is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Default(), fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings no component can honor.
func (c Config) Validate() error {
	if c.TabWidth <= 0 {
		return fmt.Errorf("tab_width must be positive, got %d", c.TabWidth)
	}
	if c.PreviewLength <= 0 {
		return fmt.Errorf("preview_length must be positive, got %d", c.PreviewLength)
	}
	if c.MatchTimeout.Duration < 0 {
		return fmt.Errorf("match_timeout must not be negative, got %s", c.MatchTimeout)
	}
	return nil
}
