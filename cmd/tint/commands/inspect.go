package commands

import (
	"errors"
	"strings"

	"github.com/dyluth/tint/internal/printer"
	"github.com/dyluth/tint/internal/report"
	"github.com/dyluth/tint/pkg/colorspace"
	"github.com/spf13/cobra"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect COLOR...",
	Short: "Show a color in every color space",
	Long: `Show each color as gamma-encoded sRGB, linear RGB, CIE XYZ and
chromaticity coordinates.

Colors may be written as hex ("1A1B26", "#fff"), as rgb(55, 32, 120), or as
an SVG color name ("cornflowerblue").

Examples:
  tint inspect 372078
  tint inspect "rgb(255, 0, 0)" cornflowerblue --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print one JSON document per color")
	rootCmd.AddCommand(inspectCmd)
}

// colorReport is the JSON form of an inspected color.
type colorReport struct {
	Input        string                   `json:"input"`
	Hex          string                   `json:"hex"`
	RGB          colorspace.GammaRGB      `json:"rgb"`
	Linear       colorspace.LinearRGB     `json:"linear"`
	XYZ          colorspace.XYZ           `json:"xyz"`
	Chromaticity *colorspace.Chromaticity `json:"chromaticity"` // null for black
}

func runInspect(cmd *cobra.Command, args []string) error {
	colors, err := parseColors(args)
	if err != nil {
		return err
	}

	for i, c := range colors {
		if inspectJSON {
			if err := report.FormatSingleJSON(cmd.OutOrStdout(), newColorReport(args[i], c)); err != nil {
				return err
			}
			continue
		}

		if i > 0 {
			printer.Println()
		}
		printColor(args[i], c)
	}
	return nil
}

func newColorReport(input string, c colorspace.GammaRGB) colorReport {
	r := colorReport{
		Input:  input,
		Hex:    c.Hex(),
		RGB:    c,
		Linear: c.Linear(),
		XYZ:    c.XYZ(),
	}
	if chroma, err := colorspace.ChromaticityOf(r.XYZ); err == nil {
		r.Chromaticity = &chroma
	}
	return r
}

// printColor writes the multi-line human description of c.
func printColor(label string, c colorspace.GammaRGB) {
	printer.Color(label, c)
	printer.Printf("  %-13s %s\n", "debug", indent(c.Debug(), 16))
	printer.Printf("  %-13s %s\n", "xyz", c.XYZ())
	printer.Printf("  %-13s %s\n", "chromaticity", describeChromaticity(c.XYZ()))
}

func describeChromaticity(v colorspace.XYZ) string {
	chroma, err := colorspace.ChromaticityOf(v)
	if errors.Is(err, colorspace.ErrDegenerateStimulus) {
		return "undefined (X+Y+Z = 0)"
	}
	return chroma.String()
}

// parseColors parses every argument, reporting the first failure.
func parseColors(args []string) ([]colorspace.GammaRGB, error) {
	colors := make([]colorspace.GammaRGB, 0, len(args))
	for _, arg := range args {
		c, err := colorspace.Parse(arg)
		if err != nil {
			return nil, printer.Error(
				"invalid color",
				err.Error(),
				[]string{`Use hex ("1A1B26", "#fff"), rgb(r, g, b), or an SVG color name`},
			)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// indent prefixes every line after the first with n spaces.
func indent(s string, n int) string {
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", n))
}
