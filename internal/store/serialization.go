package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dyluth/tint/internal/palette"
	"github.com/dyluth/tint/pkg/colorspace"
)

// SnapshotToHash converts a Snapshot to a Redis hash.
// Colors and slots are JSON-encoded into single fields.
func SnapshotToHash(s *Snapshot) (map[string]interface{}, error) {
	p := s.Palette
	fields := map[string]any{
		"background": p.Background,
		"foreground": p.Foreground,
		"base":       p.Base,
		"accent":     p.Accent,
	}

	hash := map[string]interface{}{
		"id":            s.ID,
		"name":          p.Name,
		"created_at_ms": s.CreatedAtMs,
		"seeded":        strconv.FormatBool(p.Seeded),
	}
	for name, v := range fields {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", name, err)
		}
		hash[name] = string(data)
	}

	return hash, nil
}

// HashToSnapshot converts a Redis hash back to a Snapshot.
func HashToSnapshot(hash map[string]string) (*Snapshot, error) {
	createdAtMs, err := strconv.ParseInt(hash["created_at_ms"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at_ms field: %w", err)
	}

	p := palette.New(hash["name"])
	p.Seeded, _ = strconv.ParseBool(hash["seeded"])

	colors := []struct {
		field string
		dst   *colorspace.LinearRGB
	}{
		{"background", &p.Background},
		{"foreground", &p.Foreground},
	}
	for _, c := range colors {
		if err := json.Unmarshal([]byte(hash[c.field]), c.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", c.field, err)
		}
	}

	slots := []struct {
		field string
		dst   *palette.Slot
	}{
		{"base", &p.Base},
		{"accent", &p.Accent},
	}
	for _, s := range slots {
		if err := json.Unmarshal([]byte(hash[s.field]), s.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", s.field, err)
		}
	}

	return &Snapshot{
		ID:          hash["id"],
		CreatedAtMs: createdAtMs,
		Palette:     p,
	}, nil
}
