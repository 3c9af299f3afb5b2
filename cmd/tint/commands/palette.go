package commands

import (
	"context"
	"errors"
	"time"

	"github.com/dyluth/tint/internal/config"
	"github.com/dyluth/tint/internal/palette"
	"github.com/dyluth/tint/internal/printer"
	"github.com/dyluth/tint/internal/report"
	"github.com/dyluth/tint/internal/resolver"
	"github.com/dyluth/tint/internal/store"
	"github.com/spf13/cobra"
)

// storeTimeout bounds every Redis round trip made by a palette command.
const storeTimeout = 5 * time.Second

var (
	paletteSave   bool
	paletteJSON   bool
	paletteOutput string
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the configured palette",
	Long: `Build the palette described by the palette section of tint.yml, or the
built-in sixteen-color seed table when there is none, and show every role
with a color swatch.

Use --save to store the palette in Redis (store.redis_url in tint.yml or
TINT_REDIS_URL), then recall it with 'tint palette list' and
'tint palette get ID'.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Args:  cobra.NoArgs,
	RunE:  runPaletteList,
}

var paletteGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a saved palette",
	Long: `Show a saved palette. ID may be the full UUID or a unique prefix of at
least 6 characters.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaletteGet,
}

var paletteDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteDelete,
}

func init() {
	paletteCmd.Flags().BoolVar(&paletteSave, "save", false, "Save the palette to Redis")
	paletteCmd.PersistentFlags().BoolVar(&paletteJSON, "json", false, "Print palettes as JSON")
	paletteListCmd.Flags().StringVarP(&paletteOutput, "output", "o", "table", "Output format: table or jsonl")

	paletteCmd.AddCommand(paletteListCmd, paletteGetCmd, paletteDeleteCmd)
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := cfg.BuildPalette()
	if err != nil {
		return printer.Error("invalid palette", err.Error(), nil)
	}

	if paletteJSON {
		if err := report.FormatSingleJSON(cmd.OutOrStdout(), p); err != nil {
			return err
		}
	} else {
		printPalette(p)
	}

	if !paletteSave {
		return nil
	}

	client, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
	defer cancel()

	snapshot, err := client.SavePalette(ctx, p)
	if err != nil {
		return printer.Error("failed to save palette", err.Error(), nil)
	}
	printer.Success("Saved palette '%s' as %s\n", p.Name, snapshot.ID)
	return nil
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	format, err := report.ParseOutputFormat(paletteOutput)
	if err != nil {
		return printer.Error("invalid output format", err.Error(), []string{"Valid formats: table, jsonl"})
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
	defer cancel()

	snapshots, err := client.ListPalettes(ctx)
	if err != nil {
		return printer.Error("failed to list palettes", err.Error(), nil)
	}

	if format == report.OutputFormatJSONL {
		return report.FormatSnapshotsJSONL(cmd.OutOrStdout(), snapshots)
	}
	report.FormatSnapshots(cmd.OutOrStdout(), snapshots, client.Namespace())
	return nil
}

func runPaletteGet(cmd *cobra.Command, args []string) error {
	client, id, err := resolveSavedPalette(cmd, args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
	defer cancel()

	snapshot, err := client.GetPalette(ctx, id)
	if err != nil {
		return printer.Error("failed to load palette", err.Error(), nil)
	}

	if paletteJSON {
		return report.FormatSingleJSON(cmd.OutOrStdout(), snapshot)
	}
	printer.Printf("ID:      %s\n", snapshot.ID)
	printer.Printf("Saved:   %s\n", time.UnixMilli(snapshot.CreatedAtMs).UTC().Format(time.RFC3339))
	printPalette(snapshot.Palette)
	return nil
}

func runPaletteDelete(cmd *cobra.Command, args []string) error {
	client, id, err := resolveSavedPalette(cmd, args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
	defer cancel()

	if err := client.DeletePalette(ctx, id); err != nil {
		return printer.Error("failed to delete palette", err.Error(), nil)
	}
	printer.Success("Deleted palette %s\n", id)
	return nil
}

// resolveSavedPalette opens the store and expands a short ID. On success the
// caller owns the returned client.
func resolveSavedPalette(cmd *cobra.Command, shortID string) (*store.Client, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	client, err := openStore(cfg)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), storeTimeout)
	defer cancel()

	id, err := resolver.ResolvePaletteID(ctx, client, shortID)
	if err == nil {
		return client, id, nil
	}
	client.Close()

	var ambiguous *resolver.AmbiguousError
	switch {
	case resolver.IsNotFoundError(err):
		return nil, "", printer.Error(
			"palette not found",
			err.Error(),
			[]string{"List saved palettes:\n  tint palette list"},
		)
	case errors.As(err, &ambiguous):
		return nil, "", printer.Error("ambiguous palette ID", resolver.FormatAmbiguousError(ambiguous), nil)
	default:
		return nil, "", printer.Error("invalid palette ID", err.Error(), nil)
	}
}

// openStore connects to Redis and verifies it is reachable.
func openStore(cfg *config.TintConfig) (*store.Client, error) {
	client, err := store.NewClientFromURL(cfg.Store.RedisURL, cfg.Store.Namespace, logger)
	if err != nil {
		return nil, printer.Error("invalid store configuration", err.Error(), nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, printer.ErrorWithContext(
			"Redis unavailable",
			err.Error(),
			map[string]string{"URL": cfg.Store.RedisURL},
			[]string{
				"Start Redis, e.g. docker run -p 6379:6379 redis",
				"Point store.redis_url or TINT_REDIS_URL at a running server",
			},
		)
	}
	return client, nil
}

// printPalette prints every color of p with a swatch.
func printPalette(p *palette.Palette) {
	printer.Heading("Palette %s", p.Name)
	for _, e := range p.Entries() {
		printer.Color(e.Label(), e.Color.Gamma())
	}
}
