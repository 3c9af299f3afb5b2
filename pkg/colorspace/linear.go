package colorspace

import "fmt"

// LinearRGB is a linear-light color with sRGB primaries. Channels are
// unbounded; in-gamut colors fall in [0,1].
type LinearRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Space implements Color.
func (l LinearRGB) Space() Space { return SpaceLinear }

// Gamma encodes the color; see ToGamma for clamping.
func (l LinearRGB) Gamma() GammaRGB { return ToGamma(l) }

// Linear implements Color.
func (l LinearRGB) Linear() LinearRGB { return l }

// XYZ implements Color.
func (l LinearRGB) XYZ() XYZ { return RGBToXYZ(l) }

// Add mixes two colors additively.
func (l LinearRGB) Add(o LinearRGB) LinearRGB {
	return LinearRGB{R: l.R + o.R, G: l.G + o.G, B: l.B + o.B}
}

// Scale multiplies every channel by k.
func (l LinearRGB) Scale(k float64) LinearRGB {
	return LinearRGB{R: l.R * k, G: l.G * k, B: l.B * k}
}

// InGamut reports whether every channel lies in [0,1].
func (l LinearRGB) InGamut() bool {
	return l.R >= 0 && l.R <= 1 && l.G >= 0 && l.G <= 1 && l.B >= 0 && l.B <= 1
}

// String prints the linear triple, e.g. "RGB_VEC(0.0103, 0.0109, 0.0194)".
func (l LinearRGB) String() string {
	return fmt.Sprintf("RGB_VEC(%g, %g, %g)", l.R, l.G, l.B)
}

// Mix sums colors additively. Mix() is black.
func Mix(colors ...LinearRGB) LinearRGB {
	var out LinearRGB
	for _, c := range colors {
		out = out.Add(c)
	}
	return out
}

// Average mixes colors and divides by their count, keeping the result in
// gamut when every input is. Average() is black.
func Average(colors ...LinearRGB) LinearRGB {
	if len(colors) == 0 {
		return LinearRGB{}
	}
	return Mix(colors...).Scale(1 / float64(len(colors)))
}
