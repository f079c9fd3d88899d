package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bricklayer25/jsoncrack.com/pkg/models"
)

// SettingsFile is looked up in the working directory.
const SettingsFile = ".jsoncrack.yaml"

// LoadSettings reads the settings file, returning defaults when it does
// not exist.
func LoadSettings(path string) (*models.Settings, error) {
	if path == "" {
		path = SettingsFile
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	if settings.Editor.IndentWidth <= 0 {
		settings.Editor.IndentWidth = models.DefaultSettings().Editor.IndentWidth
	}
	return settings, nil
}

// SaveSettings writes settings back as YAML.
func SaveSettings(path string, settings *models.Settings) error {
	if path == "" {
		path = SettingsFile
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

// FormatFor derives the write format for a document from settings,
// optionally sniffing the document's own indentation.
func FormatFor(doc []byte, settings *models.Settings) models.Format {
	format := models.Format{Indent: settings.Editor.IndentWidth}
	if settings.Editor.DetectIndent {
		format.Indent = DetectIndent(doc, format.Indent)
	}
	return format
}
