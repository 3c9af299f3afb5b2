package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/tint/internal/palette"
	"github.com/dyluth/tint/internal/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `version: "1.0"
spectral:
  path: data/cie.csv
  on_malformed: skip
palette:
  name: tokyo-night
  background: "1A1B26"
  foreground: "#C0CAF5"
  base:
    primary: "2F3549"
    variants: ["16161E", "444B6A"]
  accent:
    primary: "0DB9D7"
    variants: ["rgb(158, 206, 106)", "F7768E"]
store:
  redis_url: redis://cache:6379/2
  namespace: themes
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "tint.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0644))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	config, err := Load(writeConfig(t, fullConfig))
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, "data/cie.csv", config.Spectral.Path)
	assert.Equal(t, spectral.PolicySkip, config.Policy())
	assert.Equal(t, "tokyo-night", config.Palette.Name)
	assert.Equal(t, []string{"16161E", "444B6A"}, config.Palette.Base.Variants)
	assert.Equal(t, "redis://cache:6379/2", config.Store.RedisURL)
	assert.Equal(t, "themes", config.Store.Namespace)
}

func TestLoad_MinimalConfigGetsDefaults(t *testing.T) {
	config, err := Load(writeConfig(t, `version: "1.0"`+"\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSpectralPath, config.Spectral.Path)
	assert.Equal(t, spectral.PolicyAbort, config.Policy())
	assert.Nil(t, config.Palette)
	assert.Equal(t, DefaultRedisURL, config.Store.RedisURL)
	assert.Equal(t, DefaultNamespace, config.Store.Namespace)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/tint.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	invalidYAML := `version: "1.0"
palette:
  - this is invalid
    yaml syntax
`
	config, err := Load(writeConfig(t, invalidYAML))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		config, found, err := LoadOrDefault(filepath.Join(t.TempDir(), "tint.yml"))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, Default(), config)
	})

	t.Run("existing file", func(t *testing.T) {
		config, found, err := LoadOrDefault(writeConfig(t, fullConfig))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "tokyo-night", config.Palette.Name)
	})

	t.Run("invalid file is still an error", func(t *testing.T) {
		_, _, err := LoadOrDefault(writeConfig(t, `version: "2.0"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}

func TestValidate(t *testing.T) {
	validPalette := func() *PaletteConfig {
		return &PaletteConfig{
			Name:       "p",
			Background: "000000",
			Foreground: "ffffff",
			Base:       &SlotConfig{Primary: "333333"},
			Accent:     &SlotConfig{Primary: "ff0000", Variants: []string{"00ff00"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *TintConfig)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *TintConfig) {},
		},
		{
			name:    "unsupported version",
			mutate:  func(c *TintConfig) { c.Version = "2.0" },
			wantErr: "unsupported version: 2.0",
		},
		{
			name:    "missing version",
			mutate:  func(c *TintConfig) { c.Version = "" },
			wantErr: "unsupported version",
		},
		{
			name:    "bad malformed policy",
			mutate:  func(c *TintConfig) { c.Spectral = &SpectralConfig{OnMalformed: "retry"} },
			wantErr: "invalid malformed-row policy: retry",
		},
		{
			name:    "palette without name",
			mutate:  func(c *TintConfig) { c.Palette.Name = "" },
			wantErr: "palette: name is required",
		},
		{
			name:    "palette missing foreground",
			mutate:  func(c *TintConfig) { c.Palette.Foreground = "" },
			wantErr: "foreground is required",
		},
		{
			name:    "palette bad background",
			mutate:  func(c *TintConfig) { c.Palette.Background = "#12345" },
			wantErr: "background: invalid color",
		},
		{
			name:    "palette missing accent",
			mutate:  func(c *TintConfig) { c.Palette.Accent = nil },
			wantErr: "accent.primary is required",
		},
		{
			name:    "palette bad variant",
			mutate:  func(c *TintConfig) { c.Palette.Base.Variants = []string{"333", "notacolor"} },
			wantErr: "base.variants[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &TintConfig{Version: "1.0", Palette: validPalette()}
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildPalette(t *testing.T) {
	t.Run("default table", func(t *testing.T) {
		p, err := Default().BuildPalette()
		require.NoError(t, err)
		assert.Equal(t, palette.Default(), p)
	})

	t.Run("configured palette", func(t *testing.T) {
		config, err := Load(writeConfig(t, fullConfig))
		require.NoError(t, err)

		p, err := config.BuildPalette()
		require.NoError(t, err)
		assert.Equal(t, "tokyo-night", p.Name)
		assert.Equal(t, "RGB(26, 27, 38)", p.Background.Gamma().String())
		assert.Equal(t, "#c0caf5", p.Foreground.Gamma().Hex())
		require.Len(t, p.Base.Variants, 2)
		require.Len(t, p.Accent.Variants, 2)
		assert.Equal(t, "#9ece6a", p.Accent.Variants[0].Gamma().Hex())
	})
}

func TestApply(t *testing.T) {
	config := Default()
	err := config.Apply(Overrides{
		SpectralPath: "/tmp/other.csv",
		OnMalformed:  "skip",
		RedisURL:     "redis://elsewhere:6380/0",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.csv", config.Spectral.Path)
	assert.Equal(t, spectral.PolicySkip, config.Policy())
	assert.Equal(t, "redis://elsewhere:6380/0", config.Store.RedisURL)

	t.Run("empty overrides keep file values", func(t *testing.T) {
		config, err := Load(writeConfig(t, fullConfig))
		require.NoError(t, err)
		require.NoError(t, config.Apply(Overrides{}))
		assert.Equal(t, "data/cie.csv", config.Spectral.Path)
	})

	t.Run("invalid override", func(t *testing.T) {
		err := Default().Apply(Overrides{OnMalformed: "maybe"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
