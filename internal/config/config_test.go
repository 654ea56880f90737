package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.True(t, cfg.UI.ShowLineNumbers)
	require.True(t, cfg.UI.AutoWrap)
	require.True(t, cfg.WatchFile)
	require.NotEmpty(t, cfg.UI.Placeholder)
	require.Empty(t, cfg.Theme.Mode)
}

func TestValidate_ThemeMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"", false},
		{"light", false},
		{"dark", false},
		{"solarized", true},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Theme.Mode = tt.mode
		err := cfg.Validate()
		if tt.wantErr {
			require.Error(t, err, "mode %q", tt.mode)
		} else {
			require.NoError(t, err, "mode %q", tt.mode)
		}
	}
}

func TestWriteDefault_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "show_line_numbers: true")
	require.Contains(t, string(data), "auto_wrap: true")
	require.Contains(t, string(data), "watch_file: true")
	// Comments survive into the written file.
	require.Contains(t, string(data), "# Show the line number gutter.")
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n"), 0644))

	require.Error(t, WriteDefault(path))
}

func TestWriteDefault_RoundTripsThroughViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefault(path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}
