// Package palette holds a color scheme as a set of named roles. Every color is
// stored in linear RGB; gamma-encoded seeds are converted when they are added.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dyluth/tint/pkg/colorspace"
)

var (
	// ErrNotMultiValued is returned when a variant is added to a role that
	// holds a single color.
	ErrNotMultiValued = errors.New("role does not accept variants")
	// ErrUnknownRole is returned for a role outside the four defined ones.
	ErrUnknownRole = errors.New("unknown palette role")
)

// Role names a slot in the palette.
type Role int

const (
	RoleBase Role = iota
	RoleAccent
	RoleBackground
	RoleForeground
)

// Roles lists every role in display order.
var Roles = []Role{RoleBackground, RoleForeground, RoleBase, RoleAccent}

func (r Role) String() string {
	switch r {
	case RoleBase:
		return "base"
	case RoleAccent:
		return "accent"
	case RoleBackground:
		return "background"
	case RoleForeground:
		return "foreground"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// MultiValued reports whether the role has variants in addition to its
// primary color.
func (r Role) MultiValued() bool {
	return r == RoleBase || r == RoleAccent
}

// ParseRole converts a role name to a Role.
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base":
		return RoleBase, nil
	case "accent":
		return RoleAccent, nil
	case "background", "bg":
		return RoleBackground, nil
	case "foreground", "fg":
		return RoleForeground, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Slot is a primary color plus its ordered variants.
type Slot struct {
	Primary  colorspace.LinearRGB   `json:"primary"`
	Variants []colorspace.LinearRGB `json:"variants,omitempty"`
}

// Len returns the number of colors in the slot, primary included.
func (s Slot) Len() int {
	return 1 + len(s.Variants)
}

// Palette is the aggregate populated from seed colors.
type Palette struct {
	Name       string               `json:"name"`
	Base       Slot                 `json:"base"`
	Accent     Slot                 `json:"accent"`
	Background colorspace.LinearRGB `json:"background"`
	Foreground colorspace.LinearRGB `json:"foreground"`
	Seeded     bool                 `json:"seeded"`
}

// New returns an empty palette.
func New(name string) *Palette {
	return &Palette{Name: name}
}

// Seed sets the four single colors of the palette. Existing variants are
// kept.
func (p *Palette) Seed(base, accent, background, foreground colorspace.GammaRGB) {
	p.Base.Primary = base.Linear()
	p.Accent.Primary = accent.Linear()
	p.Background = background.Linear()
	p.Foreground = foreground.Linear()
	p.Seeded = true
}

// AddVariant appends c to the variants of role. Variants keep the order in
// which they were added.
func (p *Palette) AddVariant(role Role, c colorspace.GammaRGB) error {
	slot, err := p.slot(role)
	if err != nil {
		return err
	}
	slot.Variants = append(slot.Variants, c.Linear())
	return nil
}

func (p *Palette) slot(role Role) (*Slot, error) {
	switch role {
	case RoleBase:
		return &p.Base, nil
	case RoleAccent:
		return &p.Accent, nil
	case RoleBackground, RoleForeground:
		return nil, fmt.Errorf("%s: %w", role, ErrNotMultiValued)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
}

// Entry is one color of the palette as listed by Entries.
type Entry struct {
	Role  Role
	Index int // 0 is the primary; variants start at 1
	Color colorspace.LinearRGB
}

// Label returns "base", "base.1" and so on.
func (e Entry) Label() string {
	if e.Index == 0 {
		return e.Role.String()
	}
	return fmt.Sprintf("%s.%d", e.Role, e.Index)
}

// Entries lists every color in display order: background, foreground, then
// base and accent each followed by their variants.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, 0, 2+p.Base.Len()+p.Accent.Len())
	entries = append(entries,
		Entry{Role: RoleBackground, Color: p.Background},
		Entry{Role: RoleForeground, Color: p.Foreground},
	)
	for _, role := range []Role{RoleBase, RoleAccent} {
		slot, _ := p.slot(role)
		entries = append(entries, Entry{Role: role, Color: slot.Primary})
		for i, v := range slot.Variants {
			entries = append(entries, Entry{Role: role, Index: i + 1, Color: v})
		}
	}
	return entries
}
