package palette

import (
	"strings"
	"testing"

	"github.com/dyluth/tint/pkg/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeeds(t *testing.T) {
	seeds := DefaultSeeds()
	require.Len(t, seeds, 16)

	assert.Equal(t, colorspace.FromComponents(0x1A, 0x1B, 0x26), seeds[0])
	assert.Equal(t, colorspace.FromComponents(0xF7, 0x76, 0x8E), seeds[15])

	hex := DefaultHex()
	require.Len(t, hex, 16)
	for i, h := range hex {
		assert.Len(t, h, 6, "entry %d", i)
		assert.Equal(t, "#"+strings.ToLower(h), seeds[i].Hex())
	}
}

func TestDefaultSeeds_ReturnsCopy(t *testing.T) {
	seeds := DefaultSeeds()
	seeds[0] = colorspace.FromComponents(1, 2, 3)

	hex := DefaultHex()
	hex[0] = "000000"

	assert.Equal(t, colorspace.FromComponents(0x1A, 0x1B, 0x26), DefaultSeeds()[0])
	assert.Equal(t, "1A1B26", DefaultHex()[0])
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, DefaultName, p.Name)
	assert.True(t, p.Seeded)

	assert.Equal(t, "RGB(26, 27, 38)", p.Background.Gamma().String())
	assert.Equal(t, "RGB(192, 202, 245)", p.Foreground.Gamma().String())
	assert.Equal(t, "#2f3549", p.Base.Primary.Gamma().Hex())
	assert.Equal(t, "#0db9d7", p.Accent.Primary.Gamma().Hex())

	// Every entry of the table ends up somewhere in the palette.
	assert.Len(t, p.Entries(), 16)
}

func TestFromSeeds_AllLinear(t *testing.T) {
	seeds := SeedSet{
		Background:     colorspace.FromComponents(0, 0, 0),
		Foreground:     colorspace.FromComponents(255, 255, 255),
		Base:           colorspace.FromComponents(128, 128, 128),
		BaseVariants:   []colorspace.GammaRGB{colorspace.FromComponents(64, 64, 64)},
		Accent:         colorspace.FromComponents(255, 0, 0),
		AccentVariants: []colorspace.GammaRGB{colorspace.FromComponents(0, 255, 0)},
	}
	p := FromSeeds("custom", seeds)

	assert.Equal(t, "custom", p.Name)
	assert.Equal(t, colorspace.LinearRGB{}, p.Background)
	assert.Equal(t, colorspace.LinearRGB{R: 1, G: 1, B: 1}, p.Foreground)
	assert.InDelta(t, 0.21586, p.Base.Primary.R, 1e-5)
	require.Len(t, p.Base.Variants, 1)
	require.Len(t, p.Accent.Variants, 1)
	assert.Equal(t, colorspace.LinearRGB{G: 1}, p.Accent.Variants[0])

	for _, e := range p.Entries() {
		assert.True(t, e.Color.InGamut(), e.Label())
	}
}
