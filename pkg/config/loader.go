package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadDocument reads a YAML file and returns its top-level mapping.
// Errors wrap ErrNotFound, ErrParse or ErrNotMapping so callers can
// distinguish a missing file from malformed content.
func LoadDocument(fsys afero.Fs, path string) (Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrParse, err)
	}

	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotMapping)
	}
	return Document(mapping), nil
}
