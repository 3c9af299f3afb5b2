package store

import (
	"fmt"

	"github.com/dyluth/tint/internal/palette"
	"github.com/google/uuid"
)

// Snapshot is a palette as saved at a point in time.
type Snapshot struct {
	ID          string           `json:"id"`
	CreatedAtMs int64            `json:"created_at_ms"`
	Palette     *palette.Palette `json:"palette"`
}

// Validate checks if the Snapshot has valid field values.
func (s *Snapshot) Validate() error {
	if _, err := uuid.Parse(s.ID); err != nil {
		return fmt.Errorf("invalid snapshot ID: not a valid UUID")
	}
	if s.Palette == nil {
		return fmt.Errorf("snapshot has no palette")
	}
	if s.Palette.Name == "" {
		return fmt.Errorf("palette name cannot be empty")
	}
	return nil
}
