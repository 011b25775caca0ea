// Package embedded is an in-process reference implementation of the
// host capability interfaces. It keeps the project document in memory
// and persists it to a YAML project file. Layer construction validates
// the connection string only; fetching and drawing tiles is left to a
// real GIS host.
package embedded

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
)

// TileLayer is the embedded engine's layer handle.
type TileLayer struct {
	id     string
	name   string
	source string
	params tileParams
}

// ID returns the engine-assigned layer identifier.
func (l *TileLayer) ID() string { return l.id }

// Name returns the user-visible layer name.
func (l *TileLayer) Name() string { return l.name }

// Source returns the connection string the layer was built from.
func (l *TileLayer) Source() string { return l.source }

// URL returns the tile URL template.
func (l *TileLayer) URL() string { return l.params.url }

// CRS returns the layer CRS identifier.
func (l *TileLayer) CRS() string { return l.params.crs }

type tileParams struct {
	url  string
	zmin int
	zmax int
	crs  string
}

// Engine implements host.RasterEngine.
type Engine struct{}

// NewEngine creates the embedded raster engine.
func NewEngine() *Engine {
	return &Engine{}
}

// NewTileLayer parses and validates an xyz connection string. Errors
// are descriptive; the dialog surfaces them to the user verbatim.
func (e *Engine) NewTileLayer(conn, name string) (host.Layer, error) {
	params, err := parseConn(conn)
	if err != nil {
		return nil, err
	}

	layer := &TileLayer{
		id:     uuid.NewString(),
		name:   name,
		source: conn,
		params: params,
	}
	log.Debug(log.CatHost, "Tile layer constructed", "id", layer.id, "name", name, "url", params.url)
	return layer, nil
}

func parseConn(conn string) (tileParams, error) {
	fields := map[string]string{}
	for _, part := range strings.Split(conn, "&") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			return tileParams{}, fmt.Errorf("malformed connection field %q", part)
		}
		fields[key] = value
	}

	if fields["type"] != "xyz" {
		return tileParams{}, fmt.Errorf("unsupported layer type %q, only xyz is supported", fields["type"])
	}

	p := tileParams{url: fields["url"], crs: fields["crs"]}
	if p.url == "" {
		return tileParams{}, fmt.Errorf("connection string has no url")
	}
	for _, ph := range []string{"{z}", "{x}", "{y}"} {
		if !strings.Contains(p.url, ph) {
			return tileParams{}, fmt.Errorf("url template %q is missing the %s placeholder", p.url, ph)
		}
	}

	var err error
	if p.zmin, err = strconv.Atoi(fields["zmin"]); err != nil {
		return tileParams{}, fmt.Errorf("invalid zmin %q", fields["zmin"])
	}
	if p.zmax, err = strconv.Atoi(fields["zmax"]); err != nil {
		return tileParams{}, fmt.Errorf("invalid zmax %q", fields["zmax"])
	}
	if p.zmin < 0 || p.zmax < p.zmin {
		return tileParams{}, fmt.Errorf("invalid zoom range %d..%d", p.zmin, p.zmax)
	}

	if err := validateCRS(p.crs); err != nil {
		return tileParams{}, err
	}
	return p, nil
}

// validateCRS accepts AUTHORITY:CODE identifiers such as EPSG:3857.
func validateCRS(crs string) error {
	authority, code, found := strings.Cut(crs, ":")
	if !found || authority == "" || code == "" {
		return fmt.Errorf("invalid crs %q, expected AUTHORITY:CODE", crs)
	}
	if _, err := strconv.Atoi(code); err != nil {
		return fmt.Errorf("invalid crs code %q", code)
	}
	return nil
}
