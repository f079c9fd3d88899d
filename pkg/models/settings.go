package models

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Editor EditorSettings `yaml:"editor"`
}

// UISettings controls UI preferences
type UISettings struct {
	ExpandDepth int  `yaml:"expand_depth"` // tree levels expanded on load
	ShowPreview bool `yaml:"show_preview"` // diff preview available while editing
}

// EditorSettings controls how edited values are written back
type EditorSettings struct {
	IndentWidth  int  `yaml:"indent_width"`
	DetectIndent bool `yaml:"detect_indent"` // infer indent from the document, fall back to indent_width
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ExpandDepth: 2,
			ShowPreview: true,
		},
		Editor: EditorSettings{
			IndentWidth:  2,
			DetectIndent: true,
		},
	}
}
