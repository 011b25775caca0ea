// Package host defines the capability surface the geoportal expects from
// the GIS application it extends. The dialog and plugin shell only talk
// to these interfaces, so a test double or an alternative host can be
// substituted wholesale.
package host

import "github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"

// Layer is a raster layer handle produced by the host's raster engine.
type Layer interface {
	// ID is the host-assigned identifier for the layer.
	ID() string
	// Name is the user-visible layer name.
	Name() string
	// Source is the connection string the layer was built from.
	Source() string
}

// RasterEngine constructs raster layers from xyz connection strings.
type RasterEngine interface {
	// NewTileLayer validates the connection string and instantiates a
	// layer. A non-nil error carries the host's failure detail.
	NewTileLayer(conn, name string) (Layer, error)
}

// Project is the host's active project: a layer registry plus the
// project-wide coordinate reference system.
type Project interface {
	// AddMapLayer registers a constructed layer with the project.
	AddMapLayer(layer Layer) error
	// CRS returns the project CRS identifier, or "" when unset.
	CRS() string
	// SetCRS sets the project CRS.
	SetCRS(crs string)
}

// Canvas is the host's map view.
type Canvas interface {
	// SetDestinationCRS sets the CRS the view is drawn in.
	SetDestinationCRS(crs string)
	// SetExtent moves the visible map region.
	SetExtent(extent geo.Extent)
	// Refresh requests a redraw.
	Refresh()
}

// Action is a menu/toolbar entry point registered by the plugin shell.
type Action struct {
	ID       string
	Title    string
	Callback func()
}

// UI is the host's menu and toolbar registration surface.
type UI interface {
	AddMenuAction(action Action)
	RemoveMenuAction(id string)
}
