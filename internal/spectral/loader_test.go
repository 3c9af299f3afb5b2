package spectral

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/dyluth/tint/internal/logging"
	"github.com/dyluth/tint/pkg/colorspace"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `380.0,0.001368,0.000039,0.006450
500.0,0.1,0.2,0.3
555.0,0.5121,1.0,0.0057
700.0,0.011359,0.004102,0.0
`

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cie.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDecode_SingleRowExact(t *testing.T) {
	records, err := Collect(Decode(strings.NewReader("500.0,0.1,0.2,0.3\n"), PolicyAbort, zerolog.Nop()))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, Record{Wavelength: 500, XYZ: colorspace.XYZ{X: 0.1, Y: 0.2, Z: 0.3}}, records[0])
}

func TestDecode_PreservesOrder(t *testing.T) {
	records, err := Collect(Decode(strings.NewReader(sampleCSV), PolicyAbort, zerolog.Nop()))
	require.NoError(t, err)
	require.Len(t, records, 4)

	got := make([]float64, len(records))
	for i, r := range records {
		got[i] = r.Wavelength
	}
	assert.Equal(t, []float64{380, 500, 555, 700}, got)
}

func TestDecode_Whitespace(t *testing.T) {
	records, err := Collect(Decode(strings.NewReader("  500 , 0.1,0.2 ,0.3\n\n"), PolicyAbort, zerolog.Nop()))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 500.0, records[0].Wavelength)
	assert.Equal(t, 0.2, records[0].XYZ.Y)
}

func TestDecode_EmptyInput(t *testing.T) {
	records, err := Collect(Decode(strings.NewReader(""), PolicyAbort, zerolog.Nop()))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecode_AbortOnMalformedRow(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantField string
	}{
		{
			name:      "non numeric field",
			input:     "380,0.1,0.2,0.3\n390,abc,0.2,0.3\n400,0.1,0.2,0.3\n",
			wantLine:  2,
			wantField: "x",
		},
		{
			name:     "too few fields",
			input:    "380,0.1,0.2,0.3\n390,0.1,0.2\n",
			wantLine: 2,
		},
		{
			name:     "too many fields",
			input:    "380,0.1,0.2,0.3,0.4\n",
			wantLine: 1,
		},
		{
			name:      "non finite value",
			input:     "380,0.1,NaN,0.3\n",
			wantLine:  1,
			wantField: "y",
		},
		{
			name:      "infinite wavelength",
			input:     "+Inf,0.1,0.2,0.3\n",
			wantLine:  1,
			wantField: "wavelength",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Collect(Decode(strings.NewReader(tt.input), PolicyAbort, zerolog.Nop()))
			require.Error(t, err)

			var rowErr *RowDecodeError
			require.True(t, errors.As(err, &rowErr), "expected RowDecodeError, got %T", err)
			assert.Equal(t, tt.wantLine, rowErr.Line)
			assert.Equal(t, tt.wantField, rowErr.Field)
			assert.Len(t, records, tt.wantLine-1, "rows before the malformed one are still yielded")
		})
	}
}

func TestDecode_AbortStopsIteration(t *testing.T) {
	input := "380,0.1,0.2,0.3\nbad,row,here,x\n400,0.1,0.2,0.3\n"

	var seen, errs int
	for _, err := range Decode(strings.NewReader(input), PolicyAbort, zerolog.Nop()) {
		if err != nil {
			errs++
			continue
		}
		seen++
	}
	assert.Equal(t, 1, seen)
	assert.Equal(t, 1, errs)
}

func TestDecode_SkipPolicy(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, false)

	input := "380,0.1,0.2,0.3\n390,abc,0.2,0.3\n400,0.1\n410,0.4,0.5,0.6\n"
	records, err := Collect(Decode(strings.NewReader(input), PolicySkip, logger))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 380.0, records[0].Wavelength)
	assert.Equal(t, 410.0, records[1].Wavelength)

	assert.Equal(t, 2, strings.Count(buf.String(), "skipping malformed spectral row"))
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestDecode_ReadFailureAlwaysStops(t *testing.T) {
	ioErr := errors.New("disk on fire")

	for _, policy := range []Policy{PolicyAbort, PolicySkip} {
		t.Run(policy.String(), func(t *testing.T) {
			_, err := Collect(Decode(failingReader{err: ioErr}, policy, zerolog.Nop()))
			require.Error(t, err)
			assert.ErrorIs(t, err, ioErr)

			var rowErr *RowDecodeError
			assert.False(t, errors.As(err, &rowErr))
		})
	}
}

func TestLoader_Records(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	loader := NewLoader(path, PolicyAbort, zerolog.Nop())

	records, err := Collect(loader.Records())
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestLoader_Restartable(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	seq := NewLoader(path, PolicyAbort, zerolog.Nop()).Records()

	first, err := Collect(seq)
	require.NoError(t, err)
	second, err := Collect(seq)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoader_MissingFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.csv")
	loader := NewLoader(path, PolicyAbort, zerolog.Nop())

	var count int
	var gotErr error
	for _, err := range loader.Records() {
		count++
		gotErr = err
	}

	assert.Equal(t, 1, count, "an unopenable source yields exactly one error")
	var srcErr *SourceUnavailableError
	require.True(t, errors.As(gotErr, &srcErr))
	assert.Equal(t, path, srcErr.Path)
	assert.ErrorIs(t, gotErr, fs.ErrNotExist)
	assert.Contains(t, gotErr.Error(), "unavailable")
}

type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func TestLoader_ClosesOnEarlyBreak(t *testing.T) {
	var opened []*trackingCloser
	loader := NewLoader("cie.csv", PolicyAbort, zerolog.Nop())
	loader.open = func(string) (io.ReadCloser, error) {
		src := &trackingCloser{Reader: strings.NewReader(sampleCSV)}
		opened = append(opened, src)
		return src, nil
	}

	for rec, err := range loader.Records() {
		require.NoError(t, err)
		assert.Equal(t, 380.0, rec.Wavelength)
		break
	}

	require.Len(t, opened, 1)
	assert.True(t, opened[0].closed)
}

func TestLoader_ClosesAfterAbort(t *testing.T) {
	src := &trackingCloser{Reader: strings.NewReader("380,0.1,0.2,0.3\nnot,a,valid,row\n")}
	loader := NewLoader("cie.csv", PolicyAbort, zerolog.Nop())
	loader.open = func(string) (io.ReadCloser, error) { return src, nil }

	_, err := Collect(loader.Records())
	require.Error(t, err)
	assert.True(t, src.closed)
}

func TestLoader_LazyOpen(t *testing.T) {
	opens := 0
	loader := NewLoader("cie.csv", PolicyAbort, zerolog.Nop())
	loader.open = func(string) (io.ReadCloser, error) {
		opens++
		return io.NopCloser(strings.NewReader(sampleCSV)), nil
	}

	seq := loader.Records()
	assert.Equal(t, 0, opens, "building the sequence must not touch the source")

	for range seq {
	}
	for range seq {
	}
	assert.Equal(t, 2, opens)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyAbort, false},
		{"abort", PolicyAbort, false},
		{"SKIP", PolicySkip, false},
		{" skip ", PolicySkip, false},
		{"ignore", PolicyAbort, true},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.in), func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
