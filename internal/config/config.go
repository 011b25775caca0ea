// Package config provides configuration types, defaults, and
// persistence for olsztyn-geoportal.
package config

import (
	"fmt"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"
)

// Config holds all configuration options.
type Config struct {
	// ProjectFile is the YAML project document the embedded host
	// loads on start and saves on quit.
	ProjectFile string `mapstructure:"project_file"`

	// SourcesFile optionally adds user tile sources to the built-in
	// catalog.
	SourcesFile string `mapstructure:"sources_file"`

	// Extent overrides the fixed view extent, "west,south,east,north"
	// in Web Mercator meters.
	Extent string `mapstructure:"extent"`

	// AutoReload reloads the catalog when the sources file changes.
	AutoReload bool `mapstructure:"auto_reload"`

	// LogFile receives debug logs when the --debug flag is set.
	LogFile string `mapstructure:"log_file"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		ProjectFile: "olsztyn-project.yaml",
		SourcesFile: "",
		Extent:      geo.Olsztyn().String(),
		AutoReload:  true,
		LogFile:     "olsztyn-geoportal.log",
	}
}

// ViewExtent parses the configured extent, falling back to the fixed
// Olsztyn extent when unset.
func (c Config) ViewExtent() (geo.Extent, error) {
	if c.Extent == "" {
		return geo.Olsztyn(), nil
	}
	e, err := geo.ParseExtent(c.Extent)
	if err != nil {
		return geo.Extent{}, fmt.Errorf("invalid extent in config: %w", err)
	}
	return e, nil
}
