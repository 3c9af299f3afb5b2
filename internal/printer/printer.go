package printer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dyluth/tint/pkg/colorspace"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
		swatches.SetColorProfile(termenv.TrueColor)
	} else {
		swatches.SetColorProfile(termenv.Ascii)
	}
}

var (
	// Color definitions
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	swatches = lipgloss.NewRenderer(os.Stdout)
)

// SetOutput redirects normal and error output. It returns a function that
// restores the previous writers.
func SetOutput(out, errOut io.Writer) (restore func()) {
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() {
		stdout, stderr = prevOut, prevErr
	}
}

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		green.Fprintf(stdout, "✓ %s", msg)
	} else {
		green.Fprint(stdout, msg)
	}
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Fprintf(stdout, format, a...)
}

// Warning prints a warning message in yellow with a warning emoji prefix
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		yellow.Fprintf(stdout, "⚠️  %s", msg)
	} else {
		yellow.Fprint(stdout, msg)
	}
}

// Heading prints a bold section title followed by a newline
func Heading(format string, a ...any) {
	bold.Fprintf(stdout, "%s\n", fmt.Sprintf(format, a...))
}

// Error creates a formatted error message with title, explanation, and suggestions
// Prints the formatted error to stderr with colors and returns a simple error for Cobra
func Error(title string, explanation string, suggestions []string) error {
	return ErrorWithContext(title, explanation, nil, suggestions)
}

// ErrorWithContext creates a formatted error with context details
// Prints the formatted error to stderr with colors and returns a simple error for Cobra
func ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	// Print title in red to stderr
	red.Fprintf(stderr, "%s\n\n", title)

	// Print explanation
	if explanation != "" {
		fmt.Fprintf(stderr, "%s\n", explanation)
	}

	// Print context details, sorted so output is stable
	if len(context) > 0 {
		keys := make([]string, 0, len(context))
		for key := range context {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintf(stderr, "\n")
		for _, key := range keys {
			fmt.Fprintf(stderr, "  %s: %s\n", key, context[key])
		}
	}

	// Print suggestions
	if len(suggestions) > 0 {
		fmt.Fprintf(stderr, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(stderr, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(stderr, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(stderr, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}

// Step prints a step message with emphasis (used in multi-step operations)
func Step(format string, a ...any) {
	cyan.Fprintf(stdout, "→ %s", fmt.Sprintf(format, a...))
}

// Println prints a plain message (for output that doesn't need coloring)
func Println(a ...any) {
	fmt.Fprintln(stdout, a...)
}

// Printf prints a plain formatted message (for output that doesn't need coloring)
func Printf(format string, a ...any) {
	fmt.Fprintf(stdout, format, a...)
}

// SwatchWidth is the number of cells a swatch occupies.
const SwatchWidth = 4

// Swatch renders a block filled with c. Without color support it renders as
// blank cells of the same width.
func Swatch(c colorspace.GammaRGB) string {
	return swatches.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Width(SwatchWidth).
		Render("")
}

// Color prints a swatch, a label, and the hex and RGB forms of c on one line.
func Color(label string, c colorspace.GammaRGB) {
	fmt.Fprintf(stdout, "%s %-12s %s  %s\n", Swatch(c), label, c.Hex(), c)
}
