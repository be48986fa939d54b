package cli

import (
	"context"
	"fmt"

	"github.com/emiliopalmerini/themestudio/internal/app"
)

// newDeps loads the application config and wires shared dependencies.
// configDir overrides THEMESTUDIO_CONFIG_DIR when set.
func newDeps(ctx context.Context, configDir string) (*app.Config, *app.Deps, error) {
	cfg, err := app.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if configDir != "" {
		cfg.ConfigDir = configDir
	}

	deps, err := app.NewDeps(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, deps, nil
}
