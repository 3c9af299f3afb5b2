package commands

import (
	"github.com/dyluth/tint/internal/printer"
	"github.com/dyluth/tint/pkg/colorspace"
	"github.com/spf13/cobra"
)

var mixAverage bool

var mixCmd = &cobra.Command{
	Use:   "mix COLOR COLOR...",
	Short: "Add colors together in linear light",
	Long: `Mix colors additively. Each color is decoded to linear RGB, the channels
are summed, and the result is encoded back to sRGB. Sums outside the sRGB
gamut are clamped when encoded.

With --average the sum is divided by the number of colors, which keeps the
result in gamut.

Examples:
  tint mix red lime              # RGB(255, 255, 0)
  tint mix black white --average # RGB(188, 188, 188)`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMix,
}

func init() {
	mixCmd.Flags().BoolVar(&mixAverage, "average", false, "Divide the sum by the number of colors")
	rootCmd.AddCommand(mixCmd)
}

func runMix(cmd *cobra.Command, args []string) error {
	colors, err := parseColors(args)
	if err != nil {
		return err
	}

	linear := make([]colorspace.LinearRGB, len(colors))
	for i, c := range colors {
		linear[i] = c.Linear()
		printer.Printf("  %-14s %s\n", args[i], linear[i])
	}

	mixed := colorspace.Mix(linear...)
	if mixAverage {
		mixed = colorspace.Average(linear...)
	}
	logger.Debug().Int("colors", len(linear)).Bool("average", mixAverage).Msg("mixed colors")

	printer.Println()
	printer.Color("mix", mixed.Gamma())
	printer.Printf("  %-14s %s\n", "linear", mixed)
	if !mixed.InGamut() {
		printer.Warning("mix is outside the sRGB gamut; encoded value is clamped\n")
	}
	return nil
}
