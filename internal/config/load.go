package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/richhaase/grib/internal/terminal"
)

// LoadFile reads a flat YAML option file and builds a store named after
// the file.
func LoadFile(path string, logger *terminal.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read option file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid option file %s: %w", path, err)
	}

	return New(filepath.Base(path), raw, logger)
}
