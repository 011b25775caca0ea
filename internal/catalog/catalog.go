// Package catalog holds the read-only table of web tile-map sources the
// user can add as raster layers.
package catalog

import (
	"fmt"
	"strings"
)

// TileSource describes one XYZ tile service. Definitions are immutable
// once the catalog is built.
type TileSource struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	MinZoom     int    `yaml:"min_zoom"`
	MaxZoom     int    `yaml:"max_zoom"`
	CRS         string `yaml:"crs"`
	Description string `yaml:"description,omitempty"`
}

// Validate checks that the definition is usable as an XYZ source.
func (s TileSource) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("tile source: name is required")
	}
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("tile source %q: url is required", s.Name)
	}
	for _, ph := range []string{"{z}", "{x}", "{y}"} {
		if !strings.Contains(s.URL, ph) {
			return fmt.Errorf("tile source %q: url template is missing %s placeholder", s.Name, ph)
		}
	}
	if s.MinZoom < 0 {
		return fmt.Errorf("tile source %q: min zoom must not be negative", s.Name)
	}
	if s.MaxZoom < s.MinZoom {
		return fmt.Errorf("tile source %q: max zoom (%d) below min zoom (%d)", s.Name, s.MaxZoom, s.MinZoom)
	}
	if strings.TrimSpace(s.CRS) == "" {
		return fmt.Errorf("tile source %q: crs is required", s.Name)
	}
	return nil
}

// Catalog is an ordered, name-keyed set of tile sources.
type Catalog struct {
	order   []string
	sources map[string]TileSource
}

// New builds a catalog from the given sources, preserving their order.
// A later source with an already-known name replaces the earlier entry
// in place.
func New(sources ...TileSource) *Catalog {
	c := &Catalog{sources: make(map[string]TileSource, len(sources))}
	for _, s := range sources {
		if _, known := c.sources[s.Name]; !known {
			c.order = append(c.order, s.Name)
		}
		c.sources[s.Name] = s
	}
	return c
}

// Names returns the display names in definition order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Lookup returns the definition for the given display name.
func (c *Catalog) Lookup(name string) (TileSource, bool) {
	s, ok := c.sources[name]
	return s, ok
}

// Sources returns all definitions in definition order.
func (c *Catalog) Sources() []TileSource {
	out := make([]TileSource, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sources[name])
	}
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.order)
}
