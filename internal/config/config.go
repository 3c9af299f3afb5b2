package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dyluth/tint/internal/palette"
	"github.com/dyluth/tint/internal/spectral"
	"github.com/dyluth/tint/pkg/colorspace"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Validate when a field is left empty.
const (
	DefaultPath         = "tint.yml"
	DefaultSpectralPath = "cie_xyz-data.csv"
	DefaultRedisURL     = "redis://localhost:6379/0"
	DefaultNamespace    = "default"
)

// TintConfig represents the top-level tint.yml configuration
type TintConfig struct {
	Version  string          `yaml:"version"`
	Spectral *SpectralConfig `yaml:"spectral,omitempty"`
	Palette  *PaletteConfig  `yaml:"palette,omitempty"` // nil means the default seed table
	Store    *StoreConfig    `yaml:"store,omitempty"`
}

// SpectralConfig locates the color-matching dataset
type SpectralConfig struct {
	Path        string `yaml:"path"`
	OnMalformed string `yaml:"on_malformed,omitempty"` // "abort" (default) or "skip"
}

// PaletteConfig assigns seed colors to palette roles. Colors use any syntax
// accepted by colorspace.Parse.
type PaletteConfig struct {
	Name       string      `yaml:"name"`
	Background string      `yaml:"background"`
	Foreground string      `yaml:"foreground"`
	Base       *SlotConfig `yaml:"base"`
	Accent     *SlotConfig `yaml:"accent"`
}

// SlotConfig is a primary color and its variants
type SlotConfig struct {
	Primary  string   `yaml:"primary"`
	Variants []string `yaml:"variants,omitempty"`
}

// StoreConfig points at the Redis instance used to save palettes
type StoreConfig struct {
	RedisURL  string `yaml:"redis_url"`
	Namespace string `yaml:"namespace,omitempty"`
}

// Default returns the configuration used when no tint.yml exists.
func Default() *TintConfig {
	cfg := &TintConfig{Version: "1.0"}
	// A bare config with the right version always validates.
	_ = cfg.Validate()
	return cfg
}

// Validate performs strict validation on the configuration and fills in
// defaults for omitted sections.
func (c *TintConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Spectral == nil {
		c.Spectral = &SpectralConfig{}
	}
	if c.Spectral.Path == "" {
		c.Spectral.Path = DefaultSpectralPath
	}
	if _, err := spectral.ParsePolicy(c.Spectral.OnMalformed); err != nil {
		return fmt.Errorf("spectral: %w", err)
	}

	if c.Palette != nil {
		if err := c.Palette.Validate(); err != nil {
			return err
		}
	}

	if c.Store == nil {
		c.Store = &StoreConfig{}
	}
	if c.Store.RedisURL == "" {
		c.Store.RedisURL = DefaultRedisURL
	}
	if c.Store.Namespace == "" {
		c.Store.Namespace = DefaultNamespace
	}

	return nil
}

// Validate checks that every color in the palette section parses and that
// the four roles are present.
func (p *PaletteConfig) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("palette: name is required")
	}

	single := []struct {
		field, value string
	}{
		{"background", p.Background},
		{"foreground", p.Foreground},
	}
	for _, s := range single {
		if s.value == "" {
			return fmt.Errorf("palette '%s': %s is required", p.Name, s.field)
		}
		if _, err := colorspace.Parse(s.value); err != nil {
			return fmt.Errorf("palette '%s': %s: %w", p.Name, s.field, err)
		}
	}

	slots := []struct {
		field string
		slot  *SlotConfig
	}{
		{"base", p.Base},
		{"accent", p.Accent},
	}
	for _, s := range slots {
		if s.slot == nil || s.slot.Primary == "" {
			return fmt.Errorf("palette '%s': %s.primary is required", p.Name, s.field)
		}
		if _, err := colorspace.Parse(s.slot.Primary); err != nil {
			return fmt.Errorf("palette '%s': %s.primary: %w", p.Name, s.field, err)
		}
		for i, v := range s.slot.Variants {
			if _, err := colorspace.Parse(v); err != nil {
				return fmt.Errorf("palette '%s': %s.variants[%d]: %w", p.Name, s.field, i, err)
			}
		}
	}

	return nil
}

// Policy returns the malformed-row policy for the spectral loader.
func (c *TintConfig) Policy() spectral.Policy {
	if c.Spectral == nil {
		return spectral.PolicyAbort
	}
	// Validate has already rejected unknown names.
	policy, _ := spectral.ParsePolicy(c.Spectral.OnMalformed)
	return policy
}

// BuildPalette populates a palette from the palette section, or from the
// default seed table when the section is absent.
func (c *TintConfig) BuildPalette() (*palette.Palette, error) {
	if c.Palette == nil {
		return palette.Default(), nil
	}

	seeds, err := c.Palette.SeedSet()
	if err != nil {
		return nil, err
	}
	return palette.FromSeeds(c.Palette.Name, seeds), nil
}

// SeedSet parses the configured colors.
func (p *PaletteConfig) SeedSet() (palette.SeedSet, error) {
	if p.Base == nil || p.Accent == nil {
		return palette.SeedSet{}, errors.New("palette: base and accent are required")
	}

	var seeds palette.SeedSet
	var err error
	parse := func(s string) colorspace.GammaRGB {
		if err != nil {
			return colorspace.GammaRGB{}
		}
		var c colorspace.GammaRGB
		c, err = colorspace.Parse(s)
		return c
	}

	seeds.Background = parse(p.Background)
	seeds.Foreground = parse(p.Foreground)
	seeds.Base = parse(p.Base.Primary)
	for _, v := range p.Base.Variants {
		seeds.BaseVariants = append(seeds.BaseVariants, parse(v))
	}
	seeds.Accent = parse(p.Accent.Primary)
	for _, v := range p.Accent.Variants {
		seeds.AccentVariants = append(seeds.AccentVariants, parse(v))
	}

	if err != nil {
		return palette.SeedSet{}, fmt.Errorf("palette '%s': %w", p.Name, err)
	}
	return seeds, nil
}

// Load reads and validates tint.yml from the specified path
func Load(path string) (*TintConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config TintConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault behaves like Load, except that a missing file yields the
// default configuration. found reports whether a file was read.
func LoadOrDefault(path string) (cfg *TintConfig, found bool, err error) {
	cfg, err = Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Overrides carries values from flags or the environment that take
// precedence over the file.
type Overrides struct {
	SpectralPath string
	OnMalformed  string
	RedisURL     string
}

// Apply copies non-empty overrides into c and re-validates.
func (c *TintConfig) Apply(o Overrides) error {
	if c.Spectral == nil {
		c.Spectral = &SpectralConfig{}
	}
	if c.Store == nil {
		c.Store = &StoreConfig{}
	}
	if o.SpectralPath != "" {
		c.Spectral.Path = o.SpectralPath
	}
	if o.OnMalformed != "" {
		c.Spectral.OnMalformed = o.OnMalformed
	}
	if o.RedisURL != "" {
		c.Store.RedisURL = o.RedisURL
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
