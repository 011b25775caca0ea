package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/catalog"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
)

func TestNewTileLayer_Valid(t *testing.T) {
	engine := NewEngine()

	layer, err := engine.NewTileLayer(
		"type=xyz&url=https://tile.openstreetmap.org/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG:3857",
		"Standardowa mapa OSM")
	require.NoError(t, err)

	assert.NotEmpty(t, layer.ID())
	assert.Equal(t, "Standardowa mapa OSM", layer.Name())
	assert.Contains(t, layer.Source(), "type=xyz")

	tile, ok := layer.(*TileLayer)
	require.True(t, ok)
	assert.Equal(t, "https://tile.openstreetmap.org/{z}/{x}/{y}.png", tile.URL())
	assert.Equal(t, "EPSG:3857", tile.CRS())
}

func TestNewTileLayer_UniqueIDs(t *testing.T) {
	engine := NewEngine()
	conn := host.ConnString(catalog.Default().Sources()[0])

	a, err := engine.NewTileLayer(conn, "a")
	require.NoError(t, err)
	b, err := engine.NewTileLayer(conn, "b")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewTileLayer_AllDefaultSourcesValid(t *testing.T) {
	engine := NewEngine()

	for _, src := range catalog.Default().Sources() {
		_, err := engine.NewTileLayer(host.ConnString(src), src.Name)
		assert.NoError(t, err, "source %q", src.Name)
	}
}

func TestNewTileLayer_Invalid(t *testing.T) {
	tests := []struct {
		name string
		conn string
	}{
		{"empty", ""},
		{"wrong type", "type=wms&url=https://t/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG:3857"},
		{"no url", "type=xyz&url=&zmin=0&zmax=19&crs=EPSG:3857"},
		{"no placeholders", "type=xyz&url=https://t/tile.png&zmin=0&zmax=19&crs=EPSG:3857"},
		{"bad zmin", "type=xyz&url=https://t/{z}/{x}/{y}.png&zmin=x&zmax=19&crs=EPSG:3857"},
		{"bad zmax", "type=xyz&url=https://t/{z}/{x}/{y}.png&zmin=0&zmax=&crs=EPSG:3857"},
		{"inverted zoom range", "type=xyz&url=https://t/{z}/{x}/{y}.png&zmin=10&zmax=5&crs=EPSG:3857"},
		{"negative zmin", "type=xyz&url=https://t/{z}/{x}/{y}.png&zmin=-1&zmax=5&crs=EPSG:3857"},
		{"crs without code", "type=xyz&url=https://t/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG"},
		{"crs non-numeric code", "type=xyz&url=https://t/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG:abc"},
		{"malformed field", "type=xyz&url=https://t/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG:3857&junk"},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer, err := engine.NewTileLayer(tt.conn, "x")
			assert.Error(t, err)
			assert.Nil(t, layer)
		})
	}
}
