// Package fonts holds the catalog of style names figart knows about.
//
// A Catalog is fixed at construction and never mutated afterwards; code that
// needs a different set of names builds a new Catalog. Membership checks are
// exact and case-sensitive.
package fonts

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/figart/pkg/errors"
)

// Entry is one numbered line of a catalog listing. Index is 1-based.
type Entry struct {
	Index int
	Name  string
}

// Catalog is an ordered, immutable list of style names.
type Catalog struct {
	names       []string
	defaultName string
	members     map[string]struct{}
}

// NewCatalog builds a catalog from names, which are copied. defaultName must
// be one of them.
func NewCatalog(names []string, defaultName string) (*Catalog, error) {
	c := &Catalog{
		names:       append([]string(nil), names...),
		defaultName: defaultName,
		members:     make(map[string]struct{}, len(names)),
	}
	for _, n := range c.names {
		c.members[n] = struct{}{}
	}
	if !c.Contains(defaultName) {
		return nil, errors.Newf(errors.ErrInvalidInput, "default style %q is not in the catalog", defaultName).
			WithDetail("default", defaultName)
	}
	return c, nil
}

// Contains reports whether name is in the catalog
func (c *Catalog) Contains(name string) bool {
	_, ok := c.members[name]
	return ok
}

// Default returns the fallback style name
func (c *Catalog) Default() string { return c.defaultName }

// Len returns the number of entries, duplicates included
func (c *Catalog) Len() int { return len(c.names) }

// Names returns a copy of the entries in catalog order
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// List returns the first count entries, clamped to the catalog size.
func (c *Catalog) List(count int) []Entry {
	if count > len(c.names) {
		count = len(c.names)
	}
	if count <= 0 {
		return nil
	}
	entries := make([]Entry, count)
	for i := 0; i < count; i++ {
		entries[i] = Entry{Index: i + 1, Name: c.names[i]}
	}
	return entries
}

// Resolve turns an interactive choice into a style name. A number selects
// the entry at that 1-based position; otherwise the choice must match a
// name exactly. Anything else yields the default and ok=false.
func (c *Catalog) Resolve(choice string) (string, bool) {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(c.names) {
			return c.names[n-1], true
		}
		return c.defaultName, false
	}
	if c.Contains(choice) {
		return choice, true
	}
	return c.defaultName, false
}

// WithExtra returns a new catalog with names appended. Names already
// present are skipped.
func (c *Catalog) WithExtra(names ...string) *Catalog {
	merged := c.Names()
	seen := make(map[string]struct{}, len(c.members)+len(names))
	for n := range c.members {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		merged = append(merged, n)
	}
	out, _ := NewCatalog(merged, c.defaultName)
	return out
}

// ParseCount interprets a --list-fonts value. "all" means every entry,
// a non-negative integer means itself, and anything else means fallback.
func ParseCount(raw string, total, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "all" {
		return total
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
