package colorspace

import "fmt"

// GammaRGB is a gamma-encoded sRGB color with 8 bits per channel.
type GammaRGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// FromComponents builds a gamma-encoded color from its channel values.
func FromComponents(r, g, b uint8) GammaRGB {
	return GammaRGB{R: r, G: g, B: b}
}

// ToGamma encodes a linear color with the sRGB transfer function.
// Channels outside the displayable range are clamped to [0,255], so the
// conversion is lossy for out-of-gamut input.
func ToGamma(l LinearRGB) GammaRGB {
	return GammaRGB{
		R: encodeChannel(l.R),
		G: encodeChannel(l.G),
		B: encodeChannel(l.B),
	}
}

// Space implements Color.
func (c GammaRGB) Space() Space { return SpaceGamma }

// Gamma implements Color.
func (c GammaRGB) Gamma() GammaRGB { return c }

// Linear decodes each channel with the sRGB transfer function.
func (c GammaRGB) Linear() LinearRGB {
	return LinearRGB{
		R: decodeChannel(c.R),
		G: decodeChannel(c.G),
		B: decodeChannel(c.B),
	}
}

// XYZ implements Color.
func (c GammaRGB) XYZ() XYZ { return RGBToXYZ(c.Linear()) }

// Hex returns the color as "#rrggbb".
func (c GammaRGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the decimal form, e.g. "RGB(26, 27, 38)".
func (c GammaRGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Debug returns the decimal form followed by the linear triple on a second
// line.
func (c GammaRGB) Debug() string {
	return c.String() + "\n" + c.Linear().String()
}

// GoString makes %#v print the debug form.
func (c GammaRGB) GoString() string {
	return c.Debug()
}
