// Package spectral reads tabulated color-matching data: one (wavelength, XYZ)
// pair per row of a headerless CSV file.
package spectral

import (
	"fmt"
	"strings"

	"github.com/dyluth/tint/pkg/colorspace"
)

// Record is one row of the dataset.
type Record struct {
	Wavelength float64        `json:"wavelength"`
	XYZ        colorspace.XYZ `json:"xyz"`
}

// Policy decides what happens when a row cannot be decoded.
type Policy int

const (
	// PolicyAbort yields the first RowDecodeError and stops iterating.
	PolicyAbort Policy = iota
	// PolicySkip logs malformed rows and keeps going.
	PolicySkip
)

func (p Policy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy reads a policy name as written in tint.yml or on the command
// line. The empty string selects PolicyAbort.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	}
	return PolicyAbort, fmt.Errorf("invalid malformed-row policy: %s (must be 'abort' or 'skip')", name)
}

// SourceUnavailableError means the data file could not be opened. Callers
// are expected to report it and carry on without spectral data.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("spectral data source %s unavailable: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// RowDecodeError reports a row that is not a (wavelength, x, y, z) tuple.
// Field is empty when the row as a whole was malformed.
type RowDecodeError struct {
	Line  int
	Field string
	Err   error
}

func (e *RowDecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode spectral row at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("decode spectral row at line %d: field %s: %v", e.Line, e.Field, e.Err)
}

func (e *RowDecodeError) Unwrap() error { return e.Err }
