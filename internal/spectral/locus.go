package spectral

import (
	"errors"

	"github.com/dyluth/tint/pkg/colorspace"
)

// LocusPoint is the chromaticity of a single wavelength.
type LocusPoint struct {
	Wavelength   float64                 `json:"wavelength"`
	Chromaticity colorspace.Chromaticity `json:"chromaticity"`
}

// Locus projects each record onto the chromaticity plane, tracing the
// spectral locus. Rows with a zero stimulus have no chromaticity; they are
// left out and counted in the second return value.
func Locus(records []Record) ([]LocusPoint, int) {
	points := make([]LocusPoint, 0, len(records))
	degenerate := 0
	for _, rec := range records {
		c, err := colorspace.ChromaticityOf(rec.XYZ)
		if errors.Is(err, colorspace.ErrDegenerateStimulus) {
			degenerate++
			continue
		}
		points = append(points, LocusPoint{Wavelength: rec.Wavelength, Chromaticity: c})
	}
	return points, degenerate
}

// Summary describes a loaded dataset.
type Summary struct {
	Count          int     `json:"count"`
	MinWavelength  float64 `json:"min_wavelength"`
	MaxWavelength  float64 `json:"max_wavelength"`
	PeakY          float64 `json:"peak_y"`
	PeakWavelength float64 `json:"peak_wavelength"`
	// Ascending is false if any row has a smaller wavelength than the row
	// before it.
	Ascending bool `json:"ascending"`
}

// Summarize computes a Summary. The zero Summary is returned for no records.
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	first := records[0]
	s := Summary{
		Count:          len(records),
		MinWavelength:  first.Wavelength,
		MaxWavelength:  first.Wavelength,
		PeakY:          first.XYZ.Y,
		PeakWavelength: first.Wavelength,
		Ascending:      true,
	}

	for i, rec := range records[1:] {
		if rec.Wavelength < records[i].Wavelength {
			s.Ascending = false
		}
		s.MinWavelength = min(s.MinWavelength, rec.Wavelength)
		s.MaxWavelength = max(s.MaxWavelength, rec.Wavelength)
		if rec.XYZ.Y > s.PeakY {
			s.PeakY = rec.XYZ.Y
			s.PeakWavelength = rec.Wavelength
		}
	}
	return s
}
