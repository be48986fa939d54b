package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/themestudio/internal/ports"
)

const (
	serviceName    = "themestudio"
	serviceVersion = "1.0.0"
)

// Exporter exports generation metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	meter         metric.Meter
	palettesTotal metric.Int64Counter
	themesTotal   metric.Int64Counter
	tokensTotal   metric.Int64Counter
	durationHist  metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Active() {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newInstruments(provider)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func newInstruments(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	palettesTotal, err := meter.Int64Counter(
		"themestudio_palettes_total",
		metric.WithDescription("Total number of generated palettes"),
		metric.WithUnit("{palette}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating palettes counter: %w", err)
	}

	themesTotal, err := meter.Int64Counter(
		"themestudio_themes_total",
		metric.WithDescription("Total number of generated themes"),
		metric.WithUnit("{theme}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating themes counter: %w", err)
	}

	tokensTotal, err := meter.Int64Counter(
		"themestudio_token_resolutions_total",
		metric.WithDescription("Token resolutions by resolver tier"),
		metric.WithUnit("{token}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tokens counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"themestudio_generation_duration_seconds",
		metric.WithDescription("Palette and theme generation duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		meter:         meter,
		palettesTotal: palettesTotal,
		themesTotal:   themesTotal,
		tokensTotal:   tokensTotal,
		durationHist:  durationHist,
	}, nil
}

// ExportPaletteMetrics records one generated palette.
func (e *Exporter) ExportPaletteMetrics(ctx context.Context, m *ports.PaletteMetrics) error {
	opt := metric.WithAttributes(attribute.String("kind", m.Kind))

	e.palettesTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, m.Duration.Seconds(),
		metric.WithAttributes(attribute.String("operation", "palette"), attribute.String("kind", m.Kind)))

	return nil
}

// ExportThemeMetrics records one generated theme and its token resolutions.
func (e *Exporter) ExportThemeMetrics(ctx context.Context, m *ports.ThemeMetrics) error {
	e.themesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", m.Mode),
		attribute.Int("data_colors", m.DataColors),
	))

	for tier, n := range m.TokensByTier {
		e.tokensTotal.Add(ctx, n, metric.WithAttributes(
			attribute.String("mode", m.Mode),
			attribute.String("tier", tier),
		))
	}

	e.durationHist.Record(ctx, m.Duration.Seconds(),
		metric.WithAttributes(attribute.String("operation", "theme"), attribute.String("mode", m.Mode)))

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
