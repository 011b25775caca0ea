package host

import (
	"fmt"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/catalog"
)

// ConnString assembles the xyz connection string consumed by the host's
// raster-layer constructor. Field order is fixed; hosts parse this
// positionally as well as by key.
func ConnString(src catalog.TileSource) string {
	return fmt.Sprintf("type=xyz&url=%s&zmin=%d&zmax=%d&crs=%s",
		src.URL, src.MinZoom, src.MaxZoom, src.CRS)
}
