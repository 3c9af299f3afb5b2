package spectral

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dyluth/tint/pkg/colorspace"
	"github.com/rs/zerolog"
)

// fieldNames are the columns of a row, in order.
var fieldNames = [4]string{"wavelength", "x", "y", "z"}

// Loader streams records from a CSV file on disk.
type Loader struct {
	Path   string
	Policy Policy
	Logger zerolog.Logger

	open func(path string) (io.ReadCloser, error)
}

// NewLoader returns a loader for path.
func NewLoader(path string, policy Policy, logger zerolog.Logger) *Loader {
	return &Loader{
		Path:   path,
		Policy: policy,
		Logger: logger,
	}
}

// Records returns a lazy sequence over the file. Every range over the result
// opens the file again, so the sequence can be restarted. The file is closed
// whenever iteration ends, including when the consumer stops early.
//
// If the file cannot be opened the sequence yields a single
// *SourceUnavailableError. Row failures follow l.Policy.
func (l *Loader) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		open := l.open
		if open == nil {
			open = openFile
		}

		src, err := open(l.Path)
		if err != nil {
			yield(Record{}, &SourceUnavailableError{Path: l.Path, Err: err})
			return
		}
		defer func() {
			if err := src.Close(); err != nil {
				l.Logger.Warn().Err(err).Str("path", l.Path).Msg("failed to close spectral data source")
			}
		}()

		l.Logger.Debug().Str("path", l.Path).Str("policy", l.Policy.String()).Msg("reading spectral data")
		for rec, err := range Decode(src, l.Policy, l.Logger) {
			if !yield(rec, err) {
				return
			}
		}
	}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Decode returns a sequence over the rows read from r, in source order.
//
// Under PolicyAbort the first malformed row is yielded as a *RowDecodeError
// and the sequence ends. Under PolicySkip malformed rows are logged at warn
// level and skipped. An I/O failure of r always ends the sequence.
func Decode(r io.Reader, policy Policy, logger zerolog.Logger) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = len(fieldNames)
		reader.TrimLeadingSpace = true
		reader.ReuseRecord = true

		for {
			fields, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			var rec Record
			if err != nil {
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					yield(Record{}, fmt.Errorf("read spectral data: %w", err))
					return
				}
				err = &RowDecodeError{Line: parseErr.StartLine, Err: parseErr.Err}
			} else {
				line, _ := reader.FieldPos(0)
				rec, err = decodeRow(fields, line)
			}

			if err != nil {
				if policy == PolicySkip {
					logger.Warn().Err(err).Msg("skipping malformed spectral row")
					continue
				}
				yield(Record{}, err)
				return
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

func decodeRow(fields []string, line int) (Record, error) {
	var values [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Record{}, &RowDecodeError{Line: line, Field: fieldNames[i], Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, &RowDecodeError{Line: line, Field: fieldNames[i], Err: fmt.Errorf("value %q is not finite", field)}
		}
		values[i] = v
	}

	return Record{
		Wavelength: values[0],
		XYZ:        colorspace.XYZ{X: values[1], Y: values[2], Z: values[3]},
	}, nil
}

// Collect drains seq. It returns the records read so far together with the
// first error, so a caller can still show a partial dataset.
func Collect(seq iter.Seq2[Record, error]) ([]Record, error) {
	var records []Record
	for rec, err := range seq {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}
