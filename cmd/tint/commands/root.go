package commands

import (
	"fmt"
	"strings"

	"github.com/dyluth/tint/internal/config"
	"github.com/dyluth/tint/internal/logging"
	"github.com/dyluth/tint/internal/printer"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version string
	commit  string
	date    string
)

// settings merges persistent flags with TINT_* environment variables.
// Flags win over the environment, which wins over tint.yml.
var settings = viper.New()

// logger is built for each invocation in PersistentPreRunE.
var logger = zerolog.Nop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Tint - color-space conversion and palette toolkit",
	Long: `Tint converts colors between gamma-encoded sRGB, linear RGB and CIE XYZ,
computes chromaticity coordinates, mixes colors in linear light, and
inspects tabulated spectral color-matching data.

Palettes are built from seed colors in tint.yml (or a built-in default
table) and can be saved to Redis for later recall.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		logger = logging.New(cmd.ErrOrStderr(), settings.GetBool("verbose"))
		return nil
	},
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultPath, "Path to tint.yml (env TINT_CONFIG)")
	flags.BoolP("verbose", "v", false, "Enable debug logging (env TINT_VERBOSE)")
	flags.String("spectral-path", "", "Override spectral.path from tint.yml (env TINT_SPECTRAL_PATH)")
	flags.String("redis-url", "", "Override store.redis_url from tint.yml (env TINT_REDIS_URL)")

	for _, name := range []string{"config", "verbose", "spectral-path", "redis-url"} {
		// Only fails for a nil flag
		_ = settings.BindPFlag(name, flags.Lookup(name))
	}

	settings.SetEnvPrefix("TINT")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
}

// loadConfig reads tint.yml (falling back to defaults when the file does not
// exist) and applies flag and environment overrides.
func loadConfig() (*config.TintConfig, error) {
	path := settings.GetString("config")

	cfg, found, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": path},
			[]string{"Fix the file, or point --config at another one"},
		)
	}
	if found {
		logger.Debug().Str("path", path).Msg("loaded configuration")
	} else {
		logger.Debug().Str("path", path).Msg("no configuration file, using defaults")
	}

	overrides := config.Overrides{
		SpectralPath: settings.GetString("spectral-path"),
		RedisURL:     settings.GetString("redis-url"),
	}
	if err := cfg.Apply(overrides); err != nil {
		return nil, printer.Error("invalid configuration", err.Error(), nil)
	}
	return cfg, nil
}
