package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MinShortIDLength is the minimum required length for short ID prefixes.
// Set to 6 characters to balance usability with collision avoidance.
const MinShortIDLength = 6

// PaletteIndex is the part of the palette store the resolver needs.
type PaletteIndex interface {
	PaletteExists(ctx context.Context, id string) (bool, error)
	ScanPaletteIDs(ctx context.Context, prefix string) ([]string, error)
}

// ResolvePaletteID resolves a short ID prefix to a full UUID.
// Returns the full UUID if exactly one match found.
// Returns error if zero or multiple matches found.
//
// The function handles three cases:
// 1. Input is already a full UUID (36 chars, 4 hyphens) - validates existence
// 2. Input is too short (< 6 chars) - returns validation error
// 3. Input is a short prefix - scans for matches and returns unique result
func ResolvePaletteID(ctx context.Context, index PaletteIndex, shortID string) (string, error) {
	shortID = strings.ToLower(strings.TrimSpace(shortID))

	// If input is already a full UUID, verify it exists and return as-is
	if len(shortID) == 36 && strings.Count(shortID, "-") == 4 {
		exists, err := index.PaletteExists(ctx, shortID)
		if err != nil {
			return "", fmt.Errorf("failed to verify palette existence: %w", err)
		}
		if !exists {
			return "", &NotFoundError{ShortID: shortID}
		}
		return shortID, nil
	}

	// Validate minimum length
	if len(shortID) < MinShortIDLength {
		return "", fmt.Errorf("short ID must be at least %d characters (got %d)", MinShortIDLength, len(shortID))
	}

	// Scan for matching UUIDs
	matches, err := index.ScanPaletteIDs(ctx, shortID)
	if err != nil {
		return "", fmt.Errorf("failed to search for palette: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}

// NotFoundError indicates no palettes matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no palettes found matching '%s'", e.ShortID)
}

// AmbiguousError indicates multiple palettes matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short ID '%s' matches %d palettes", e.ShortID, len(e.Matches))
}

// FormatAmbiguousError creates a user-friendly error message for ambiguous short IDs.
// Lists all matching UUIDs (up to 10, then "...and N more").
func FormatAmbiguousError(err *AmbiguousError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: ambiguous short ID '%s' matches %d palettes:\n", err.ShortID, len(err.Matches))

	// List up to 10 matches
	displayCount := min(len(err.Matches), 10)
	for _, id := range err.Matches[:displayCount] {
		fmt.Fprintf(&b, "  %s\n", id)
	}

	if len(err.Matches) > 10 {
		fmt.Fprintf(&b, "  ...and %d more\n", len(err.Matches)-10)
	}

	b.WriteString("\nUse a longer prefix to uniquely identify the palette.")
	return b.String()
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	var target *AmbiguousError
	return errors.As(err, &target)
}
