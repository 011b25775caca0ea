package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads extra tile sources from a YAML file and returns the
// built-in catalog merged with them. Extras are appended after the
// built-ins; an extra reusing a built-in name overrides it in place.
//
// The file is a YAML list:
//
//	- name: Mapa ortofoto
//	  url: "https://example.org/tiles/{z}/{x}/{y}.png"
//	  min_zoom: 0
//	  max_zoom: 18
//	  crs: EPSG:3857
//	  description: Ortofotomapa regionu
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}

	var extras []TileSource
	if err := yaml.Unmarshal(data, &extras); err != nil {
		return nil, fmt.Errorf("parsing sources file %s: %w", path, err)
	}

	for _, s := range extras {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("sources file %s: %w", path, err)
		}
	}

	return New(append(Default().Sources(), extras...)...), nil
}

// LoadOrDefault behaves like Load but falls back to the built-in
// catalog when the file does not exist.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
