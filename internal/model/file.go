package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDocument reads a document from a .json, .yaml or .yml file. Missing
// lists are filled with a single blank entry.
func LoadDocument(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	d := &Document{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(b, d)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, d)
	default:
		return nil, fmt.Errorf("unsupported document format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	d.Normalize()
	return d, nil
}
