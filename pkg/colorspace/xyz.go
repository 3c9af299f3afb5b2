package colorspace

import "fmt"

// XYZ is a CIE 1931 tristimulus value relative to the D65 white point, with
// Y = 1 for reference white.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

// Apply multiplies m by the column vector (a, b, c).
func (m Matrix3) Apply(a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// srgbToXYZ maps linear sRGB to XYZ (IEC 61966-2-1 primaries, D65).
var srgbToXYZ = Matrix3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// xyzToSRGB is the inverse of srgbToXYZ.
var xyzToSRGB = Matrix3{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// SRGBToXYZMatrix returns a copy of the linear sRGB to XYZ matrix.
func SRGBToXYZMatrix() Matrix3 { return srgbToXYZ }

// XYZToSRGBMatrix returns a copy of the XYZ to linear sRGB matrix.
func XYZToSRGBMatrix() Matrix3 { return xyzToSRGB }

// D65 is the tristimulus value of linear sRGB white.
var D65 = XYZ{X: 0.95047, Y: 1.0, Z: 1.08883}

// RGBToXYZ converts linear RGB to tristimulus values.
func RGBToXYZ(l LinearRGB) XYZ {
	x, y, z := srgbToXYZ.Apply(l.R, l.G, l.B)
	return XYZ{X: x, Y: y, Z: z}
}

// XYZToRGB converts tristimulus values to linear RGB. Colors outside the sRGB
// gamut come back with channels outside [0,1]; nothing is clamped here.
func XYZToRGB(v XYZ) LinearRGB {
	r, g, b := xyzToSRGB.Apply(v.X, v.Y, v.Z)
	return LinearRGB{R: r, G: g, B: b}
}

// Space implements Color.
func (v XYZ) Space() Space { return SpaceXYZ }

// Gamma implements Color. Out-of-gamut values are clamped.
func (v XYZ) Gamma() GammaRGB { return ToGamma(XYZToRGB(v)) }

// Linear implements Color.
func (v XYZ) Linear() LinearRGB { return XYZToRGB(v) }

// XYZ implements Color.
func (v XYZ) XYZ() XYZ { return v }

// Sum returns X + Y + Z.
func (v XYZ) Sum() float64 { return v.X + v.Y + v.Z }

func (v XYZ) String() string {
	return fmt.Sprintf("XYZ(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
