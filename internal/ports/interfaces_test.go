package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/themestudio/internal/adapters/configfs"
	"github.com/emiliopalmerini/themestudio/internal/adapters/otel"
	"github.com/emiliopalmerini/themestudio/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestConfigLoaderConformance(t *testing.T) {
	var _ ports.ConfigLoader = (*configfs.Loader)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
}

func TestNoOpMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}

func TestThemeMetricsTotalTokens(t *testing.T) {
	m := &ports.ThemeMetrics{TokensByTier: map[string]int64{"registry": 10, "fallback": 2}}
	if got := m.TotalTokens(); got != 12 {
		t.Errorf("TotalTokens() = %d, want 12", got)
	}
	if got := (&ports.ThemeMetrics{}).TotalTokens(); got != 0 {
		t.Errorf("TotalTokens() on empty = %d, want 0", got)
	}
}
