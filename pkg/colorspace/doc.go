// Package colorspace provides the color representations used by tint and the
// conversions between them.
//
// # Overview
//
// Three representations form a closed set, each implementing [Color]:
//
//   - [GammaRGB]: 8-bit gamma-encoded sRGB, the form colors are written in.
//   - [LinearRGB]: linear-light RGB, proportional to physical intensity.
//   - [XYZ]: CIE 1931 tristimulus values relative to the D65 white point.
//
// Every value is immutable. A conversion always returns a new value and every
// path between representations goes through a named function, so each one can
// be audited on its own:
//
//	GammaRGB --Linear()--> LinearRGB --RGBToXYZ--> XYZ
//	GammaRGB <--ToGamma--- LinearRGB <--XYZToRGB-- XYZ
//
// # Mixing
//
// Additive mixing is defined only on [LinearRGB]. Summing gamma-encoded
// channel values gives results that are wrong both numerically and
// perceptually, so [GammaRGB] has no arithmetic methods at all:
//
//	a := colorspace.MustParse("#37207a").Linear()
//	b := colorspace.MustParse("rgb(10, 200, 40)").Linear()
//	mixed := colorspace.Mix(a, b)
//	fmt.Println(mixed.Gamma()) // RGB(...)
//
// # Chromaticity
//
// [ChromaticityOf] projects a tristimulus value onto the (x, y) plane. A zero
// stimulus (pure black) has no chromaticity and yields [ErrDegenerateStimulus]
// instead of NaN.
package colorspace
