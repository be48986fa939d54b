package app

import (
	"context"
	"fmt"
	"log"

	"github.com/emiliopalmerini/themestudio/internal/adapters/configfs"
	"github.com/emiliopalmerini/themestudio/internal/adapters/otel"
	"github.com/emiliopalmerini/themestudio/internal/ports"
	"github.com/emiliopalmerini/themestudio/internal/theme"
	"github.com/emiliopalmerini/themestudio/internal/web"
)

// Deps are the shared collaborators of the CLI commands and the server.
type Deps struct {
	Loader  *configfs.Loader
	Configs *theme.ConfigCache
	Metrics ports.MetricsExporter
}

// NewDeps wires the config loader and the metrics exporter. An exporter that
// fails to connect degrades to a no-op.
func NewDeps(ctx context.Context, cfg *Config) (*Deps, error) {
	loader, err := configfs.NewLoader(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}

	exporter, err := otel.New(ctx, cfg.OTEL)
	if err != nil {
		log.Printf("Warning: OTEL exporter unavailable, metrics disabled: %v", err)
	}

	return &Deps{
		Loader:  loader,
		Configs: theme.NewConfigCache(loader),
		Metrics: exporter,
	}, nil
}

// Close flushes the metrics exporter.
func (d *Deps) Close(ctx context.Context) error {
	if d.Metrics == nil {
		return nil
	}
	return d.Metrics.Close(ctx)
}

// Run serves HTTP until ctx is canceled.
func Run(ctx context.Context, cfg *Config) error {
	deps, err := NewDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := deps.Close(shutdownCtx); err != nil {
			log.Printf("Warning: failed to flush metrics: %v", err)
		}
	}()

	if _, err := deps.Configs.Init(ctx); err != nil {
		return err
	}

	server := web.NewServer(cfg.Addr, cfg.ShutdownTimeout, deps.Configs, deps.Metrics)
	return server.Start(ctx)
}
