package palette

import (
	"fmt"

	"github.com/dyluth/tint/pkg/colorspace"
)

// defaultHex is the reference seed table.
var defaultHex = [16]string{
	"1A1B26", "16161E", "2F3549", "444B6A",
	"787C99", "A9B1D6", "CBCCD1", "D5D6DB",
	"C0CAF5", "A9B1D6", "0DB9D7", "9ECE6A",
	"B4F9F8", "2AC3DE", "BB9AF7", "F7768E",
}

// defaultSeeds is defaultHex parsed. It is written once by init and only
// ever copied afterwards.
var defaultSeeds [len(defaultHex)]colorspace.GammaRGB

func init() {
	for i, h := range defaultHex {
		c, err := colorspace.Parse(h)
		if err != nil {
			panic(fmt.Sprintf("palette: bad default seed %d: %v", i, err))
		}
		defaultSeeds[i] = c
	}
}

// DefaultSeeds returns a copy of the default seed table.
func DefaultSeeds() []colorspace.GammaRGB {
	out := make([]colorspace.GammaRGB, len(defaultSeeds))
	copy(out, defaultSeeds[:])
	return out
}

// DefaultHex returns the default seed table as the hex literals it was
// written in.
func DefaultHex() []string {
	out := make([]string, len(defaultHex))
	copy(out, defaultHex[:])
	return out
}

// SeedSet assigns gamma-encoded seeds to roles.
type SeedSet struct {
	Background     colorspace.GammaRGB
	Foreground     colorspace.GammaRGB
	Base           colorspace.GammaRGB
	BaseVariants   []colorspace.GammaRGB
	Accent         colorspace.GammaRGB
	AccentVariants []colorspace.GammaRGB
}

// DefaultSeedSet maps the default table onto roles: the first eight entries
// are the grays of the base ramp and the remaining entries form the accents.
func DefaultSeedSet() SeedSet {
	s := defaultSeeds
	return SeedSet{
		Background:     s[0],
		Foreground:     s[8],
		Base:           s[2],
		BaseVariants:   []colorspace.GammaRGB{s[1], s[3], s[4], s[5], s[6], s[7]},
		Accent:         s[10],
		AccentVariants: []colorspace.GammaRGB{s[9], s[11], s[12], s[13], s[14], s[15]},
	}
}

// FromSeeds builds a palette from seeds.
func FromSeeds(name string, seeds SeedSet) *Palette {
	p := New(name)
	p.Seed(seeds.Base, seeds.Accent, seeds.Background, seeds.Foreground)
	for _, v := range seeds.BaseVariants {
		_ = p.AddVariant(RoleBase, v)
	}
	for _, v := range seeds.AccentVariants {
		_ = p.AddVariant(RoleAccent, v)
	}
	return p
}

// DefaultName is the name given to the palette built by Default.
const DefaultName = "default"

// Default builds the palette described by the default seed table.
func Default() *Palette {
	return FromSeeds(DefaultName, DefaultSeedSet())
}
