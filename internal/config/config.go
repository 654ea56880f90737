// Package config provides configuration types and defaults for the
// commit editor.
package config

import "fmt"

// Config holds all configuration options.
type Config struct {
	UI        UIConfig    `mapstructure:"ui"`
	Theme     ThemeConfig `mapstructure:"theme"`
	WatchFile bool        `mapstructure:"watch_file"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// ShowLineNumbers enables the line number gutter.
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`

	// Placeholder is shown when opening an empty commit message file.
	Placeholder string `mapstructure:"placeholder"`

	// AutoWrap reflows body lines at 72 columns while typing.
	AutoWrap bool `mapstructure:"auto_wrap"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors maps color tokens (e.g. "status.warning", "title.overflow")
	// to hex values, overriding the built-in palette. Token and hex
	// validation happens when the theme is applied.
	Colors map[string]string `mapstructure:"colors"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		UI: UIConfig{
			ShowLineNumbers: true,
			Placeholder:     "Write a commit message...",
			AutoWrap:        true,
		},
		WatchFile: true,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	switch c.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", c.Theme.Mode)
	}
	return nil
}
