package colorspace

import "fmt"

// Space identifies one of the supported color representations.
type Space uint8

const (
	// SpaceGamma is 8-bit gamma-encoded sRGB.
	SpaceGamma Space = iota
	// SpaceLinear is linear-light RGB with sRGB primaries.
	SpaceLinear
	// SpaceXYZ is CIE 1931 XYZ, D65 white.
	SpaceXYZ
)

// String returns the short name used in CLI flags and output.
func (s Space) String() string {
	switch s {
	case SpaceGamma:
		return "srgb"
	case SpaceLinear:
		return "linear"
	case SpaceXYZ:
		return "xyz"
	default:
		return fmt.Sprintf("space(%d)", uint8(s))
	}
}

// ParseSpace maps a short name back to a Space.
func ParseSpace(name string) (Space, error) {
	switch name {
	case "srgb", "gamma":
		return SpaceGamma, nil
	case "linear":
		return SpaceLinear, nil
	case "xyz":
		return SpaceXYZ, nil
	}
	return 0, fmt.Errorf("unknown color space: %s (must be 'srgb', 'linear' or 'xyz')", name)
}

// Color is implemented by GammaRGB, LinearRGB and XYZ. Each method returns the
// receiver expressed in the named representation; none of them mutate it.
type Color interface {
	Space() Space
	Gamma() GammaRGB
	Linear() LinearRGB
	XYZ() XYZ
}

// Convert returns c expressed in the target space.
func Convert(c Color, to Space) (Color, error) {
	switch to {
	case SpaceGamma:
		return c.Gamma(), nil
	case SpaceLinear:
		return c.Linear(), nil
	case SpaceXYZ:
		return c.XYZ(), nil
	}
	return nil, fmt.Errorf("unknown color space: %s", to)
}

var (
	_ Color = GammaRGB{}
	_ Color = LinearRGB{}
	_ Color = XYZ{}
)
