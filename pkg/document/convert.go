package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// YAMLToJSON converts YAML document text to JSON.
func YAMLToJSON(data []byte) ([]byte, error) {
	out, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}

// JSONToYAML converts JSON document text to YAML.
func JSONToYAML(data []byte) ([]byte, error) {
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to convert JSON to YAML: %w", err)
	}
	return out, nil
}

// IsYAMLPath reports whether a file path names a YAML document.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads a document from disk, converting YAML input to the JSON
// the editor works on. The second result reports whether conversion
// happened, so callers can warn that a save writes JSON.
func LoadFile(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	if IsYAMLPath(path) {
		converted, err := YAMLToJSON(data)
		if err != nil {
			return nil, false, err
		}
		return converted, true, nil
	}
	return data, false, nil
}

// SaveFile writes document text back to disk.
func SaveFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}
