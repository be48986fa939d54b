package ports

import (
	"context"
	"time"
)

// MetricsExporter exports generation metrics to an external observability system.
type MetricsExporter interface {
	// ExportPaletteMetrics records one generated palette.
	ExportPaletteMetrics(ctx context.Context, m *PaletteMetrics) error
	// ExportThemeMetrics records one generated theme document.
	ExportThemeMetrics(ctx context.Context, m *ThemeMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// PaletteMetrics describes a single ramp generation.
type PaletteMetrics struct {
	Kind     string
	Seed     string
	Duration time.Duration
}

// ThemeMetrics describes a generated theme and how its tokens were resolved.
type ThemeMetrics struct {
	ThemeName  string
	Mode       string
	DataColors int

	// TokensByTier counts token resolutions per resolver tier
	// (registry, font, value, data_color, prefix, fallback).
	TokensByTier map[string]int64

	Duration time.Duration
}

// TotalTokens sums TokensByTier.
func (m *ThemeMetrics) TotalTokens() int64 {
	var n int64
	for _, c := range m.TokensByTier {
		n += c
	}
	return n
}
