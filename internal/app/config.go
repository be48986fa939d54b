package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/themestudio/internal/adapters/otel"
)

// EnvPrefix prefixes every environment variable read by New.
const EnvPrefix = "THEMESTUDIO"

type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// ConfigDir holds base-theme.json, visual-styles.json and tokens.yaml.
	// Empty means the XDG config directory.
	ConfigDir string `envconfig:"CONFIG_DIR"`

	OTEL otel.Config `envconfig:"OTEL"`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
