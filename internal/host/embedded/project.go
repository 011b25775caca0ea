package embedded

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
)

// layerRecord is the persisted form of a project layer.
type layerRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// document is the persisted project file shape.
type document struct {
	CRS    string        `yaml:"crs,omitempty"`
	Extent string        `yaml:"extent,omitempty"`
	Layers []layerRecord `yaml:"layers,omitempty"`
}

// Project implements host.Project backed by a YAML project file.
type Project struct {
	path   string
	crs    string
	extent string
	layers []layerRecord
}

// OpenProject loads the project document at path, or starts an empty
// project when the file does not exist yet.
func OpenProject(path string) (*Project, error) {
	p := &Project{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}

	p.crs = doc.CRS
	p.extent = doc.Extent
	p.layers = doc.Layers
	log.Info(log.CatHost, "Project loaded", "path", path, "layers", len(p.layers), "crs", p.crs)
	return p, nil
}

// AddMapLayer registers a layer with the project.
func (p *Project) AddMapLayer(layer host.Layer) error {
	for _, rec := range p.layers {
		if rec.ID == layer.ID() {
			return fmt.Errorf("layer %s already registered", layer.ID())
		}
	}
	p.layers = append(p.layers, layerRecord{
		ID:     layer.ID(),
		Name:   layer.Name(),
		Source: layer.Source(),
	})
	log.Info(log.CatHost, "Layer added to project", "id", layer.ID(), "name", layer.Name())
	return nil
}

// CRS returns the project CRS identifier, "" when unset.
func (p *Project) CRS() string { return p.crs }

// SetCRS sets the project CRS identifier.
func (p *Project) SetCRS(crs string) {
	p.crs = crs
	log.Info(log.CatHost, "Project CRS set", "crs", crs)
}

// SetViewExtent records the last view extent for persistence.
func (p *Project) SetViewExtent(extent string) {
	p.extent = extent
}

// LayerNames returns the names of registered layers in add order.
func (p *Project) LayerNames() []string {
	names := make([]string, len(p.layers))
	for i, rec := range p.layers {
		names[i] = rec.Name
	}
	return names
}

// LayerCount returns the number of registered layers.
func (p *Project) LayerCount() int { return len(p.layers) }

// Path returns the project file location.
func (p *Project) Path() string { return p.path }

// Save writes the project document atomically (temp file + rename).
func (p *Project) Save() error {
	doc := document{CRS: p.crs, Extent: p.extent, Layers: p.layers}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling project: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".project.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, p.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replacing project file: %w", err)
	}
	log.Info(log.CatHost, "Project saved", "path", p.path, "layers", len(p.layers))
	return nil
}
