package colorspace

import "math"

// Breakpoints of the piecewise sRGB transfer functions (IEC 61966-2-1).
const (
	// EncodedBreakpoint is the normalized gamma-encoded value below which the
	// EOTF is linear.
	EncodedBreakpoint = 0.04045
	// LinearBreakpoint is the linear value below which the OETF is linear.
	LinearBreakpoint = 0.0031308
)

// decodeTable holds SRGBToLinear(i/255) for every 8-bit channel value.
// Written once in init and only read afterwards.
var decodeTable [256]float64

func init() {
	for i := range decodeTable {
		decodeTable[i] = SRGBToLinear(float64(i) / 255)
	}
}

// SRGBToLinear is the sRGB electro-optical transfer function for a channel
// value normalized to [0,1].
//
//	c <= 0.04045: c / 12.92
//	otherwise:    ((c + 0.055) / 1.055) ^ 2.4
func SRGBToLinear(c float64) float64 {
	if c <= EncodedBreakpoint {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse of SRGBToLinear. The result is not clamped.
func LinearToSRGB(l float64) float64 {
	if l <= LinearBreakpoint {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// decodeChannel returns the linear value of an 8-bit encoded channel.
func decodeChannel(v uint8) float64 {
	return decodeTable[v]
}

// encodeChannel maps a linear value to an 8-bit encoded channel, rounding to
// nearest and clamping to [0,255]. NaN encodes as 0.
func encodeChannel(l float64) uint8 {
	v := math.Round(LinearToSRGB(l) * 255)
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
