package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a creator catalog from a YAML or JSON file. The file holds
// a plain list of creators.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var creators []Creator

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, &creators)
	if err != nil {
		err = json.Unmarshal(data, &creators)
		if err != nil {
			return nil, fmt.Errorf("parse catalog (tried YAML and JSON): %w", err)
		}
	}

	cat, err := New(creators)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}
