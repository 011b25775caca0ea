package embedded

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"
)

func newTestLayer(t *testing.T, name string) *TileLayer {
	t.Helper()
	layer, err := NewEngine().NewTileLayer(
		"type=xyz&url=https://tile.openstreetmap.org/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG:3857", name)
	require.NoError(t, err)
	return layer.(*TileLayer)
}

func TestOpenProject_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")

	p, err := OpenProject(path)
	require.NoError(t, err)

	assert.Empty(t, p.CRS())
	assert.Zero(t, p.LayerCount())
	assert.Equal(t, path, p.Path())
}

func TestProject_AddMapLayer(t *testing.T) {
	p, err := OpenProject(filepath.Join(t.TempDir(), "project.yaml"))
	require.NoError(t, err)

	layer := newTestLayer(t, "Standardowa mapa OSM")
	require.NoError(t, p.AddMapLayer(layer))

	assert.Equal(t, 1, p.LayerCount())
	assert.Equal(t, []string{"Standardowa mapa OSM"}, p.LayerNames())

	// The same handle cannot be registered twice.
	assert.Error(t, p.AddMapLayer(layer))
}

func TestProject_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")

	p, err := OpenProject(path)
	require.NoError(t, err)

	p.SetCRS(geo.WebMercator)
	p.SetViewExtent(geo.Olsztyn().String())
	require.NoError(t, p.AddMapLayer(newTestLayer(t, "Transport")))
	require.NoError(t, p.Save())

	reloaded, err := OpenProject(path)
	require.NoError(t, err)

	assert.Equal(t, geo.WebMercator, reloaded.CRS())
	assert.Equal(t, []string{"Transport"}, reloaded.LayerNames())
}

func TestProject_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "project.yaml")

	p, err := OpenProject(path)
	require.NoError(t, err)
	require.NoError(t, p.Save())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenProject_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	_, err := OpenProject(path)
	assert.Error(t, err)
}

func TestCanvas(t *testing.T) {
	c := NewCanvas()

	assert.Empty(t, c.DestinationCRS())
	assert.True(t, c.Extent().IsZero())
	assert.Zero(t, c.Redraws())

	c.SetDestinationCRS(geo.WebMercator)
	c.SetExtent(geo.Olsztyn())
	c.Refresh()
	c.Refresh()

	assert.Equal(t, geo.WebMercator, c.DestinationCRS())
	assert.Equal(t, geo.Olsztyn(), c.Extent())
	assert.Equal(t, 2, c.Redraws())
}
