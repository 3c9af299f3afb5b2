package colorspace

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateStimulus is returned for a tristimulus value whose components
// sum to zero (or to a non-finite value); such a stimulus has no chromaticity.
var ErrDegenerateStimulus = errors.New("degenerate stimulus: X+Y+Z is zero")

// Chromaticity is a CIE 1931 (x, y) chromaticity coordinate.
type Chromaticity struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChromaticityOf projects v onto the chromaticity plane:
// x = X/(X+Y+Z), y = Y/(X+Y+Z).
func ChromaticityOf(v XYZ) (Chromaticity, error) {
	sum := v.Sum()
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return Chromaticity{}, ErrDegenerateStimulus
	}
	return Chromaticity{X: v.X / sum, Y: v.Y / sum}, nil
}

// Z returns the implied third coordinate, 1 - x - y.
func (c Chromaticity) Z() float64 {
	return 1 - c.X - c.Y
}

func (c Chromaticity) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.X, c.Y)
}
