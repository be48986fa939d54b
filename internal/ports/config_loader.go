package ports

import "context"

// ConfigLoader loads the theme configuration used by the generators.
type ConfigLoader interface {
	Load(ctx context.Context) (*Configs, error)
}

// Configs is the theme configuration: document templates plus the values
// the tiered token resolver reads.
type Configs struct {
	// BaseTheme is the top-level theme template (textClasses, fonts, ...).
	BaseTheme map[string]any
	// VisualStyles is placed under the "visualStyles" key of generated themes.
	VisualStyles map[string]any

	Fonts  map[string]string
	Values map[string]any

	DataColors  []string
	NeutralSeed string
}
