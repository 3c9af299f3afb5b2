// Package store saves palette snapshots to Redis so they can be listed and
// recalled later.
//
// # Redis Schema
//
// Every key is namespaced so several users or projects can share a server:
//
//	tint:{namespace}:palette:{uuid}   hash, one per saved snapshot
//
// Hash fields:
//
//	id             snapshot UUID
//	name           palette name
//	created_at_ms  Unix milliseconds
//	seeded         true once the palette's primaries were set
//	background     JSON LinearRGB
//	foreground     JSON LinearRGB
//	base           JSON Slot (primary and variants)
//	accent         JSON Slot
//
// Colors are stored in linear RGB exactly as the palette holds them, so a
// snapshot loaded back is equal to the palette that was saved.
package store
