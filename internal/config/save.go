package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigTemplate is written on first run so the user has a
// commented starting point.
const defaultConfigTemplate = `# olsztyn-geoportal configuration
# Project document maintained by the embedded host.
project_file: %s

# Optional YAML file with extra tile sources merged into the catalog.
# sources_file: sources.yaml

# View extent after adding a layer: west,south,east,north (EPSG:3857).
extent: "%s"

# Reload the catalog when the sources file changes on disk.
auto_reload: %t

# Debug log location (used with --debug).
log_file: %s
`

// WriteDefaultConfig writes a commented default config file at path.
// Parent directories are created as needed.
func WriteDefaultConfig(path string) error {
	defaults := Defaults()
	content := fmt.Sprintf(defaultConfigTemplate,
		defaults.ProjectFile, defaults.Extent, defaults.AutoReload, defaults.LogFile)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
