package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dyluth/tint/internal/printer"
	"github.com/dyluth/tint/internal/report"
	"github.com/dyluth/tint/internal/spectral"
	"github.com/spf13/cobra"
)

var (
	spectralOutput      string
	spectralOnMalformed string
	spectralLocus       bool
	spectralSummary     bool
)

var spectralCmd = &cobra.Command{
	Use:   "spectral [PATH]",
	Short: "Stream a spectral color-matching dataset",
	Long: `Read a headerless CSV file of wavelength,x,y,z rows and print each record
as it is decoded.

The file defaults to spectral.path from tint.yml (or TINT_SPECTRAL_PATH).
By default the first malformed row stops the listing with an error; use
--on-malformed=skip to log and skip such rows instead.

Output Formats:
  table - Aligned columns
  jsonl - One JSON record per line

Examples:
  tint spectral cie_xyz-data.csv
  tint spectral --output=jsonl | jq '.xyz.y'
  tint spectral --locus`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpectral,
}

func init() {
	spectralCmd.Flags().StringVarP(&spectralOutput, "output", "o", "table", "Output format: table or jsonl")
	spectralCmd.Flags().StringVar(&spectralOnMalformed, "on-malformed", "", "Malformed row policy: abort or skip (default from tint.yml)")
	spectralCmd.Flags().BoolVar(&spectralLocus, "locus", false, "Print the chromaticity of each wavelength instead of XYZ")
	spectralCmd.Flags().BoolVar(&spectralSummary, "summary", false, "Print only a summary of the dataset")
	rootCmd.AddCommand(spectralCmd)
}

func runSpectral(cmd *cobra.Command, args []string) error {
	format, err := report.ParseOutputFormat(spectralOutput)
	if err != nil {
		return printer.Error("invalid output format", err.Error(), []string{"Valid formats: table, jsonl"})
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Spectral.Path
	if len(args) == 1 {
		path = args[0]
	}

	policy := cfg.Policy()
	if spectralOnMalformed != "" {
		policy, err = spectral.ParsePolicy(spectralOnMalformed)
		if err != nil {
			return printer.Error("invalid --on-malformed value", err.Error(), nil)
		}
	}

	loader := spectral.NewLoader(path, policy, logger)
	out := cmd.OutOrStdout()

	if !spectralLocus && !spectralSummary {
		if _, err := report.WriteRecords(out, loader.Records(), format); err != nil {
			return spectralError(path, err)
		}
		return nil
	}

	records, err := spectral.Collect(loader.Records())
	if err != nil {
		return spectralError(path, err)
	}

	if spectralSummary {
		report.FormatSummary(out, spectral.Summarize(records))
		return nil
	}

	points, degenerate := spectral.Locus(records)
	if err := report.FormatLocus(out, points, format); err != nil {
		return err
	}
	if degenerate > 0 {
		logger.Info().Int("rows", degenerate).Msg("omitted wavelengths with zero stimulus from the locus")
	}
	return nil
}

// spectralError turns a loader error into a formatted CLI error.
func spectralError(path string, err error) error {
	var srcErr *spectral.SourceUnavailableError
	if errors.As(err, &srcErr) {
		return printer.ErrorWithContext(
			"spectral data unavailable",
			fmt.Sprintf("Could not open the dataset: %v", srcErr.Err),
			map[string]string{"Path": path},
			[]string{
				"Pass the file path: tint spectral PATH",
				"Set spectral.path in tint.yml or TINT_SPECTRAL_PATH",
			},
		)
	}

	var rowErr *spectral.RowDecodeError
	if errors.As(err, &rowErr) {
		context := map[string]string{
			"Path": path,
			"Line": strconv.Itoa(rowErr.Line),
		}
		if rowErr.Field != "" {
			context["Field"] = rowErr.Field
		}
		return printer.ErrorWithContext(
			"malformed spectral row",
			rowErr.Err.Error(),
			context,
			[]string{"Fix the row, or rerun with --on-malformed=skip"},
		)
	}

	return fmt.Errorf("failed to read spectral data: %w", err)
}
