// Package geo contains the map extent type used to position the host view.
package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// WebMercator is the CRS identifier all built-in tile sources use.
const WebMercator = "EPSG:3857"

// olsztynExtent covers roughly 15km x 15km around the Olsztyn city
// center (lon=20.48, lat=53.78), expressed in Web Mercator meters.
const olsztynExtent = "2272000,7129000,2288000,7145000"

// Extent is a bounding box in Web Mercator coordinates.
type Extent struct {
	West  float64
	South float64
	East  float64
	North float64
}

// ParseExtent parses a "west,south,east,north" string into an Extent.
// The extent must be non-degenerate: west < east and south < north.
func ParseExtent(s string) (Extent, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Extent{}, fmt.Errorf("extent %q: expected 4 comma-separated bounds, got %d", s, len(parts))
	}

	bounds := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Extent{}, fmt.Errorf("extent %q: bound %d is not a number: %w", s, i+1, err)
		}
		bounds[i] = v
	}

	e := Extent{West: bounds[0], South: bounds[1], East: bounds[2], North: bounds[3]}
	if e.West >= e.East {
		return Extent{}, fmt.Errorf("extent %q: west (%v) must be less than east (%v)", s, e.West, e.East)
	}
	if e.South >= e.North {
		return Extent{}, fmt.Errorf("extent %q: south (%v) must be less than north (%v)", s, e.South, e.North)
	}
	return e, nil
}

// Olsztyn returns the fixed extent the view is moved to after a layer
// is added.
func Olsztyn() Extent {
	e, err := ParseExtent(olsztynExtent)
	if err != nil {
		panic("geo: invalid built-in extent: " + err.Error())
	}
	return e
}

// String formats the extent as "west,south,east,north", round-trippable
// through ParseExtent.
func (e Extent) String() string {
	return fmt.Sprintf("%s,%s,%s,%s",
		formatBound(e.West), formatBound(e.South), formatBound(e.East), formatBound(e.North))
}

// Width returns the horizontal span in CRS units.
func (e Extent) Width() float64 {
	return e.East - e.West
}

// Height returns the vertical span in CRS units.
func (e Extent) Height() float64 {
	return e.North - e.South
}

// Center returns the midpoint of the extent.
func (e Extent) Center() (x, y float64) {
	return e.West + e.Width()/2, e.South + e.Height()/2
}

// IsZero reports whether the extent is the zero value.
func (e Extent) IsZero() bool {
	return e == Extent{}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
