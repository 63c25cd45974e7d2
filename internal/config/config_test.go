package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/textalign/align"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := DefaultConfig()

		assert.Equal(t, "|", cfg.Mark)
		require.NotNil(t, cfg.Mode)
		assert.Equal(t, align.ModeLeftmost, *cfg.Mode)
		assert.Equal(t, NewlineNative, cfg.Newline)
		require.NotNil(t, cfg.Header)
		assert.True(t, *cfg.Header)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("LoadFromFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		configContent := `
mode: mark
mark: "¤"
newline: crlf
header: false
`
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)

		require.NotNil(t, cfg.Mode)
		assert.Equal(t, align.ModeMark, *cfg.Mode)
		assert.Equal(t, "¤", cfg.Mark)
		assert.Equal(t, NewlineCRLF, cfg.Newline)
		require.NotNil(t, cfg.Header)
		assert.False(t, *cfg.Header)
	})

	t.Run("PartialConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("newline: lf\n"), 0o644))

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)

		assert.Equal(t, NewlineLF, cfg.Newline)
		assert.Equal(t, DefaultMark, cfg.Mark, "mark should keep its default")
		require.NotNil(t, cfg.Header)
		assert.True(t, *cfg.Header, "header should keep its default")
		require.NotNil(t, cfg.Mode)
		assert.Equal(t, DefaultMode, *cfg.Mode, "mode should keep its default")
	})

	t.Run("ModeCaseInsensitive", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("mode: Left\n"), 0o644))

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg.Mode)
		assert.Equal(t, align.ModeLeft, *cfg.Mode)
	})

	t.Run("UnknownMode", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("mode: center\n"), 0o644))

		_, err := LoadConfig(configPath)
		assert.ErrorContains(t, err, "parse config file")
		assert.ErrorContains(t, err, `unknown mode "center"`)
	})

	t.Run("FileNotExist", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("mark: [unclosed\n"), 0o644))

		_, err := LoadConfig(configPath)
		assert.ErrorContains(t, err, "parse config file")
	})

	t.Run("InvalidValues", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("mark: '||'\n"), 0o644))

		_, err := LoadConfig(configPath)
		assert.ErrorContains(t, err, "mark must be a single character")
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("XDGConfigHome", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)

		assert.Equal(t, filepath.Join(dir, "textalign", "config.yaml"), DefaultConfigPath())
	})

	t.Run("Home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		assert.Equal(t, filepath.Join(home, ".config", "textalign", "config.yaml"), DefaultConfigPath())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		give    Config
		wantErr string
	}{
		{
			name: "Valid",
			give: Config{Mark: "#", Newline: NewlineLF},
		},
		{
			name:    "EmptyMark",
			give:    Config{Newline: NewlineLF},
			wantErr: "mark must be a single character",
		},
		{
			name:    "LongMark",
			give:    Config{Mark: "ab", Newline: NewlineLF},
			wantErr: "mark must be a single character",
		},
		{
			name: "ValidMode",
			give: Config{Mode: new(align.ModeMark), Mark: "#", Newline: NewlineLF},
		},
		{
			name:    "UnknownMode",
			give:    Config{Mode: new(align.Mode(42)), Mark: "#", Newline: NewlineLF},
			wantErr: "unknown mode",
		},
		{
			name:    "BadNewline",
			give:    Config{Mark: "|", Newline: "cr"},
			wantErr: "newline must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.give.Validate()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseNewline(t *testing.T) {
	tests := []struct {
		give string
		want string
	}{
		{NewlineLF, "\n"},
		{NewlineCRLF, "\r\n"},
		{NewlineNative, ""},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ParseNewline(tt.give)
		require.NoError(t, err, "ParseNewline(%q)", tt.give)
		assert.Equal(t, tt.want, got, "ParseNewline(%q)", tt.give)
	}

	_, err := ParseNewline("CRLF")
	assert.Error(t, err)
}
