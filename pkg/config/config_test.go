package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, 16.0, cfg.RemSize)
	assert.Equal(t, "rem", cfg.FontUnit)
	assert.Equal(t, "em", cfg.LetterSpacingUnit)
	assert.Equal(t, ColorRGBA, cfg.OutputFormatColors)
	assert.True(t, cfg.CamelizeTokenNames)
	assert.Equal(t, []string{"ignore", "description"}, cfg.IgnoreElements)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "yaml_overrides_only_present_keys",
			file: "figma-tokens.yaml",
			content: `
remSize: 10
fontUnit: px
outputFormatColors: hex
overwrite:
  graphic: true
ignoreElements:
  - skip
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10.0, cfg.RemSize)
				assert.Equal(t, "px", cfg.FontUnit)
				assert.Equal(t, ColorHex, cfg.OutputFormatColors)
				assert.True(t, cfg.Overwrite.Graphic)
				assert.False(t, cfg.Overwrite.CSS)
				assert.Equal(t, []string{"skip"}, cfg.IgnoreElements)
				// untouched defaults
				assert.Equal(t, "rem", cfg.SpacingUnit)
				assert.Equal(t, "tokens", cfg.OutputFolderTokens)
			},
		},
		{
			name:    "json_rc_file",
			file:    ".figmatokensrc.json",
			content: `{"outputFormatTokens":"json","camelizeTokenNames":false,"unitlessPrecision":3}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "json", cfg.OutputFormatTokens)
				assert.False(t, cfg.CamelizeTokenNames)
				assert.Equal(t, 3, cfg.UnitlessPrecision)
			},
		},
		{
			name:    "extensionless_json",
			file:    ".figmatokensrc",
			content: `{"remSize": 20}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 20.0, cfg.RemSize)
			},
		},
		{
			name:    "empty_yaml_keeps_defaults",
			file:    "empty.yml",
			content: "",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, New(), cfg)
			},
		},
		{
			name:        "unknown_key_rejected",
			file:        "bad.yaml",
			content:     "remsize: 10\n",
			errContains: "parsing YAML config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			path := filepath.Join("project", tt.file)
			require.NoError(t, afero.WriteFile(fsys, path, []byte(tt.content), 0644))

			cfg, err := Load(fsys, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "nope.yaml")
	assert.Error(t, err)
}

func TestLoadFromOSFilesystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figma-tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("remSize: 12\n"), 0644))

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.RemSize)
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := New()
	cfg.RemSize = 0
	cfg.FontUnit = "pt"
	cfg.OutputFormatColors = "hsl"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remSize")
	assert.Contains(t, err.Error(), "fontUnit")
	assert.Contains(t, err.Error(), "outputFormatColors")
	assert.Contains(t, err.Error(), "3 errors occurred")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("FIGMA_TOKEN", "env-token")
	t.Setenv("FIGMA_URL", "https://www.figma.com/file/ABC/x")

	cfg := New()
	cfg.Token = "flag-token"
	cfg.ApplyEnv()
	assert.Equal(t, "flag-token", cfg.Token)
	assert.Equal(t, "https://www.figma.com/file/ABC/x", cfg.URL)
}
