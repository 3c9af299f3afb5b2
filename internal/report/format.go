// Package report renders spectral data and saved palettes as text tables or
// line-delimited JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/dyluth/tint/internal/spectral"
	"github.com/dyluth/tint/internal/store"
)

// OutputFormat specifies how list output is rendered.
type OutputFormat string

const (
	// OutputFormatTable uses aligned columns for reading in a terminal
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSONL outputs one JSON object per line
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatTable, "":
		return OutputFormatTable, nil
	case OutputFormatJSONL:
		return OutputFormatJSONL, nil
	}
	return "", fmt.Errorf("unknown output format: %s (must be 'table' or 'jsonl')", s)
}

const recordRow = "%-12s %-12s %-12s %-12s\n"

// WriteRecords streams records from seq to w as they are decoded. It returns
// the number of records written and the first error from seq; rows written
// before the error stay written. The table header is held back until the
// first record, so a source that fails to open writes nothing.
func WriteRecords(w io.Writer, seq iter.Seq2[spectral.Record, error], format OutputFormat) (int, error) {
	switch format {
	case OutputFormatTable, OutputFormatJSONL:
	default:
		return 0, fmt.Errorf("unknown output format: %s", format)
	}

	header := func() {
		fmt.Fprintf(w, recordRow, "WAVELENGTH", "X", "Y", "Z")
		fmt.Fprintf(w, recordRow, "------------", "------------", "------------", "------------")
	}

	n := 0
	for rec, err := range seq {
		if err != nil {
			return n, err
		}
		if n == 0 && format == OutputFormatTable {
			header()
		}

		if format == OutputFormatJSONL {
			if err := writeJSONLine(w, rec); err != nil {
				return n, err
			}
		} else {
			fmt.Fprintf(w, recordRow,
				formatFloat(rec.Wavelength, 1),
				formatFloat(rec.XYZ.X, 6),
				formatFloat(rec.XYZ.Y, 6),
				formatFloat(rec.XYZ.Z, 6),
			)
		}
		n++
	}

	if format == OutputFormatTable {
		if n == 0 {
			header()
		}
		fmt.Fprintf(w, "\n%d %s\n", n, plural(n, "record", "records"))
	}
	return n, nil
}

// FormatLocus writes chromaticity points as a table or JSONL.
func FormatLocus(w io.Writer, points []spectral.LocusPoint, format OutputFormat) error {
	if format == OutputFormatJSONL {
		for _, p := range points {
			if err := writeJSONLine(w, p); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Fprintf(w, "%-12s %-10s %-10s\n", "WAVELENGTH", "x", "y")
	fmt.Fprintf(w, "%-12s %-10s %-10s\n", "------------", "----------", "----------")
	for _, p := range points {
		fmt.Fprintf(w, "%-12s %-10s %-10s\n",
			formatFloat(p.Wavelength, 1),
			formatFloat(p.Chromaticity.X, 6),
			formatFloat(p.Chromaticity.Y, 6),
		)
	}
	return nil
}

// FormatSummary writes a short description of a dataset.
func FormatSummary(w io.Writer, s spectral.Summary) {
	if s.Count == 0 {
		fmt.Fprintln(w, "No spectral records")
		return
	}
	fmt.Fprintf(w, "%d %s, %s-%s nm, peak Y %s at %s nm\n",
		s.Count, plural(s.Count, "record", "records"),
		formatFloat(s.MinWavelength, 1), formatFloat(s.MaxWavelength, 1),
		formatFloat(s.PeakY, 6), formatFloat(s.PeakWavelength, 1),
	)
	if !s.Ascending {
		fmt.Fprintln(w, "Note: wavelengths are not in ascending order")
	}
}

// FormatSnapshots writes saved palettes as a table.
// Returns the number of snapshots formatted.
func FormatSnapshots(w io.Writer, snapshots []*store.Snapshot, namespace string) int {
	if len(snapshots) == 0 {
		fmt.Fprintf(w, "No palettes saved in namespace '%s'\n", namespace)
		return 0
	}

	fmt.Fprintf(w, "Palettes in namespace '%s':\n\n", namespace)

	fmt.Fprintf(w, "%-10s %-20s %-7s %-8s %s\n", "ID", "NAME", "COLORS", "AGE", "BG/FG")
	fmt.Fprintf(w, "%-10s %-20s %-7s %-8s %s\n",
		"----------", "--------------------", "-------", "--------", "---------------")

	for _, s := range snapshots {
		p := s.Palette
		fmt.Fprintf(w, "%-10s %-20s %-7d %-8s %s/%s\n",
			formatID(s.ID),
			formatName(p.Name),
			len(p.Entries()),
			formatTimestamp(s.CreatedAtMs),
			p.Background.Gamma().Hex(),
			p.Foreground.Gamma().Hex(),
		)
	}

	fmt.Fprintf(w, "\n%d %s found\n", len(snapshots), plural(len(snapshots), "palette", "palettes"))
	return len(snapshots)
}

// FormatSnapshotsJSONL writes one snapshot per line.
func FormatSnapshotsJSONL(w io.Writer, snapshots []*store.Snapshot) error {
	for _, s := range snapshots {
		if err := writeJSONLine(w, s); err != nil {
			return err
		}
	}
	return nil
}

// FormatSingleJSON writes v as pretty-printed JSON followed by a newline.
func FormatSingleJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	// Add newline for clean output
	fmt.Fprintln(w)
	return nil
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write JSONL output: %w", err)
	}
	return nil
}

// formatFloat prints v with prec decimals.
func formatFloat(v float64, prec int) string {
	return fmt.Sprintf("%.*f", prec, v)
}

// formatID truncates an ID to its first 8 characters for compact display.
func formatID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatName truncates long palette names.
func formatName(name string) string {
	if name == "" {
		return "-"
	}
	if len(name) > 20 {
		return name[:17] + "..."
	}
	return name
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// formatTimestamp formats Unix timestamp in milliseconds to human-readable time.
// Shows relative time like "2m ago", "1h ago", etc.
func formatTimestamp(timestampMs int64) string {
	if timestampMs == 0 {
		return "-"
	}

	diff := time.Since(time.UnixMilli(timestampMs))

	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
