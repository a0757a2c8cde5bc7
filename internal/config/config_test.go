package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"xltotxt/internal/prompt"
)

func TestLoadConfigEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, ".txt", cfg.Output.Extension)
	require.Equal(t, "utf-8", cfg.Output.Encoding)
	require.Equal(t, ".xls", cfg.Discovery.Pattern)
	require.False(t, cfg.Discovery.StrictExtension)
	require.Equal(t, prompt.ModeAuto, cfg.Prompt.Mode)
	require.Equal(t, "info", cfg.Log.Level)
	require.NotEmpty(t, cfg.Log.File)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xltotxt.toml")
	content := `
[output]
encoding = "windows-1252"

[discovery]
strict_extension = true

[prompt]
mode = "LINE"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, ".txt", cfg.Output.Extension, "missing keys fall back to defaults")
	require.Equal(t, "windows-1252", cfg.Output.Encoding)
	require.True(t, cfg.Discovery.StrictExtension)
	require.Equal(t, prompt.ModeLine, cfg.Prompt.Mode)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[output\nextension = "},
		{"bad prompt mode", "[prompt]\nmode = \"gui\"\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
		{"extension without dot", "[output]\nextension = \"txt\"\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, filepath.Base(t.Name())+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644), "case %d", i)

			_, err := LoadConfig(path)
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "absent.toml"))
		require.Error(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
