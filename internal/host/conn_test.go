package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/catalog"
)

func TestConnString(t *testing.T) {
	src := catalog.TileSource{
		Name:    "Standardowa mapa OSM",
		URL:     "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		MinZoom: 0,
		MaxZoom: 19,
		CRS:     "EPSG:3857",
	}

	assert.Equal(t,
		"type=xyz&url=https://tile.openstreetmap.org/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG:3857",
		ConnString(src))
}

func TestConnString_AllDefaults(t *testing.T) {
	for _, src := range catalog.Default().Sources() {
		conn := ConnString(src)
		require.Contains(t, conn, "type=xyz&url="+src.URL, "source %q", src.Name)
		require.Contains(t, conn, "&crs="+src.CRS, "source %q", src.Name)
	}
}
