package otel

import (
	"context"

	"github.com/emiliopalmerini/themestudio/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) ExportPaletteMetrics(ctx context.Context, m *ports.PaletteMetrics) error {
	return nil
}

func (e *NoOpExporter) ExportThemeMetrics(ctx context.Context, m *ports.ThemeMetrics) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}

// New returns an OTLP exporter when cfg is active and a no-op exporter otherwise.
// The error is only set when an active configuration fails to connect.
func New(ctx context.Context, cfg Config) (ports.MetricsExporter, error) {
	if !cfg.Active() {
		return NewNoOpExporter(), nil
	}
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		return NewNoOpExporter(), err
	}
	return exp, nil
}
