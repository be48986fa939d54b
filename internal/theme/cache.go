// Package theme assembles complete theme documents from palettes, loaded
// configuration and the token resolver.
package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/emiliopalmerini/themestudio/internal/ports"
)

// Configs is the loaded theme configuration.
type Configs = ports.Configs

// ConfigCache holds configuration loaded once through a ports.ConfigLoader.
// It is owned by the caller and safe for concurrent use.
type ConfigCache struct {
	loader ports.ConfigLoader

	mu  sync.Mutex
	cfg *Configs
}

func NewConfigCache(loader ports.ConfigLoader) *ConfigCache {
	return &ConfigCache{loader: loader}
}

// Init loads the configuration on first use and returns the cached value afterwards.
// A failed load is not cached.
func (c *ConfigCache) Init(ctx context.Context) (*Configs, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := c.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading theme configs: %w", err)
	}
	c.cfg = cfg
	return cfg, nil
}

// Get returns the cached configuration without loading it.
func (c *ConfigCache) Get() (*Configs, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg, c.cfg != nil
}

// Clear drops the cached configuration so the next Init reloads it.
func (c *ConfigCache) Clear() {
	c.mu.Lock()
	c.cfg = nil
	c.mu.Unlock()
}

// Reload loads the configuration again and replaces the cached value.
// On failure the previous value is kept.
func (c *ConfigCache) Reload(ctx context.Context) (*Configs, error) {
	cfg, err := c.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("reloading theme configs: %w", err)
	}
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
	return cfg, nil
}
