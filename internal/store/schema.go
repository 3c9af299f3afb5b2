package store

import "fmt"

// PaletteKey returns the Redis key for a saved palette.
// Pattern: tint:{namespace}:palette:{id}
func PaletteKey(namespace, id string) string {
	return fmt.Sprintf("tint:%s:palette:%s", namespace, id)
}

// PaletteKeyPattern returns the SCAN match pattern for palette keys whose
// ID starts with prefix. An empty prefix matches every palette.
func PaletteKeyPattern(namespace, prefix string) string {
	return PaletteKey(namespace, prefix) + "*"
}

// paletteIDFromKey strips the namespace prefix from a palette key.
func paletteIDFromKey(namespace, key string) string {
	return key[len(PaletteKey(namespace, "")):]
}
