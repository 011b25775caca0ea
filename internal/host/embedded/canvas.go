package embedded

import (
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
)

// Canvas implements host.Canvas. It records the view state; an embedded
// host has nothing to draw, so Refresh only bumps a counter that the
// workspace view and tests can observe.
type Canvas struct {
	destinationCRS string
	extent         geo.Extent
	redraws        int
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// SetDestinationCRS sets the CRS the view is drawn in.
func (c *Canvas) SetDestinationCRS(crs string) {
	c.destinationCRS = crs
}

// SetExtent moves the visible map region.
func (c *Canvas) SetExtent(extent geo.Extent) {
	c.extent = extent
	log.Debug(log.CatHost, "Canvas extent set", "extent", extent.String())
}

// Refresh requests a redraw.
func (c *Canvas) Refresh() {
	c.redraws++
}

// DestinationCRS returns the current view CRS.
func (c *Canvas) DestinationCRS() string { return c.destinationCRS }

// Extent returns the current view extent.
func (c *Canvas) Extent() geo.Extent { return c.extent }

// Redraws returns how many redraws have been requested.
func (c *Canvas) Redraws() int { return c.redraws }
