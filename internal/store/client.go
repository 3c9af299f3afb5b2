package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dyluth/tint/internal/palette"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrPaletteNotFound is returned by GetPalette for an unknown ID.
var ErrPaletteNotFound = errors.New("palette not found")

// Client provides namespace-scoped Redis operations for saved palettes.
// The client is thread-safe and can be used concurrently from multiple goroutines.
type Client struct {
	rdb       *redis.Client
	namespace string
	logger    zerolog.Logger
	now       func() time.Time
}

// NewClient creates a new store client for the specified namespace.
//
// Returns an error if namespace is empty.
func NewClient(redisOpts *redis.Options, namespace string, logger zerolog.Logger) (*Client, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}

	return &Client{
		rdb:       redis.NewClient(redisOpts),
		namespace: namespace,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// NewClientFromURL parses a redis:// URL and creates a client.
func NewClientFromURL(redisURL, namespace string, logger zerolog.Logger) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return NewClient(opts, namespace, logger)
}

// Namespace returns the namespace all keys are scoped to.
func (c *Client) Namespace() string {
	return c.namespace
}

// Close closes the Redis connection. Implements io.Closer.
// After calling Close(), the client should not be used.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// SavePalette stores p under a new ID and returns the snapshot written.
func (c *Client) SavePalette(ctx context.Context, p *palette.Palette) (*Snapshot, error) {
	s := &Snapshot{
		ID:          uuid.NewString(),
		CreatedAtMs: c.now().UnixMilli(),
		Palette:     p,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	hash, err := SnapshotToHash(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize palette: %w", err)
	}

	key := PaletteKey(c.namespace, s.ID)
	if err := c.rdb.HSet(ctx, key, hash).Err(); err != nil {
		return nil, fmt.Errorf("failed to write palette to Redis: %w", err)
	}

	c.logger.Debug().Str("key", key).Str("name", p.Name).Msg("saved palette")
	return s, nil
}

// GetPalette retrieves a snapshot by full ID.
// Returns ErrPaletteNotFound if it doesn't exist; use IsNotFound to check.
func (c *Client) GetPalette(ctx context.Context, id string) (*Snapshot, error) {
	key := PaletteKey(c.namespace, id)

	hashData, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read palette from Redis: %w", err)
	}

	// HGetAll returns an empty map for non-existent keys
	if len(hashData) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}

	s, err := HashToSnapshot(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize palette: %w", err)
	}
	return s, nil
}

// PaletteExists checks if a snapshot exists without fetching it.
func (c *Client) PaletteExists(ctx context.Context, id string) (bool, error) {
	n, err := c.rdb.Exists(ctx, PaletteKey(c.namespace, id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check palette existence: %w", err)
	}
	return n > 0, nil
}

// ScanPaletteIDs returns the IDs of all snapshots whose ID begins with
// prefix, sorted. Uses SCAN so large namespaces don't block the server.
func (c *Client) ScanPaletteIDs(ctx context.Context, prefix string) ([]string, error) {
	var ids []string
	iter := c.rdb.Scan(ctx, 0, PaletteKeyPattern(c.namespace, prefix), 0).Iterator()
	for iter.Next(ctx) {
		id := paletteIDFromKey(c.namespace, iter.Val())
		// SCAN MATCH treats glob characters in the prefix specially
		if strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan palettes: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}

// ListPalettes returns every snapshot in the namespace, oldest first.
// Malformed entries are skipped with a warning.
func (c *Client) ListPalettes(ctx context.Context) ([]*Snapshot, error) {
	ids, err := c.ScanPaletteIDs(ctx, "")
	if err != nil {
		return nil, err
	}

	snapshots := make([]*Snapshot, 0, len(ids))
	for _, id := range ids {
		s, err := c.GetPalette(ctx, id)
		if err != nil {
			if IsNotFound(err) {
				// Deleted between SCAN and HGETALL
				continue
			}
			c.logger.Warn().Err(err).Str("id", id).Msg("skipping malformed palette")
			continue
		}
		snapshots = append(snapshots, s)
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].CreatedAtMs < snapshots[j].CreatedAtMs
	})
	return snapshots, nil
}

// DeletePalette removes a snapshot. Deleting an unknown ID returns
// ErrPaletteNotFound.
func (c *Client) DeletePalette(ctx context.Context, id string) error {
	n, err := c.rdb.Del(ctx, PaletteKey(c.namespace, id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	return nil
}

// IsNotFound returns true if err reports a missing palette.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPaletteNotFound) || errors.Is(err, redis.Nil)
}
