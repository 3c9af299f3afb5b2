package commands

import (
	"fmt"
	"strconv"

	"github.com/dyluth/tint/internal/printer"
	"github.com/dyluth/tint/pkg/colorspace"
	"github.com/spf13/cobra"
)

var xyzCmd = &cobra.Command{
	Use:   "xyz X Y Z",
	Short: "Convert a CIE XYZ tristimulus value to sRGB",
	Long: `Convert a CIE XYZ (D65) tristimulus value to linear RGB and then to
gamma-encoded sRGB, and show its chromaticity.

Values outside the sRGB gamut are clamped when encoded; the linear values
are shown unclamped.

Examples:
  tint xyz 0.95047 1.0 1.08883   # D65 white
  tint xyz 0.1 0.2 0.3`,
	Args: cobra.ExactArgs(3),
	RunE: runXYZ,
}

func init() {
	rootCmd.AddCommand(xyzCmd)
}

func runXYZ(cmd *cobra.Command, args []string) error {
	var components [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return printer.Error(
				"invalid tristimulus value",
				fmt.Sprintf("%q is not a number", arg),
				[]string{"Pass three decimal numbers, e.g. tint xyz 0.95047 1.0 1.08883"},
			)
		}
		components[i] = v
	}

	v := colorspace.XYZ{X: components[0], Y: components[1], Z: components[2]}
	linear := v.Linear()

	printer.Printf("  %-13s %s\n", "xyz", v)
	printer.Printf("  %-13s %s\n", "chromaticity", describeChromaticity(v))
	printer.Printf("  %-13s %s\n", "linear", linear)
	printer.Color("srgb", linear.Gamma())
	if !linear.InGamut() {
		printer.Warning("value is outside the sRGB gamut; encoded value is clamped\n")
	}
	return nil
}
