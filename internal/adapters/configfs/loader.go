// Package configfs loads theme configuration from a directory, falling back
// to embedded defaults for any file that is missing.
package configfs

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/ports"
	"github.com/emiliopalmerini/themestudio/internal/util"
)

const (
	BaseThemeFile    = "base-theme.json"
	VisualStylesFile = "visual-styles.json"
	TokensFile       = "tokens.yaml"
)

//go:embed defaults/*
var defaults embed.FS

// tokensFile is the YAML shape of tokens.yaml.
type tokensFile struct {
	NeutralSeed string            `yaml:"neutralSeed"`
	DataColors  []string          `yaml:"dataColors"`
	Fonts       map[string]string `yaml:"fonts"`
	Values      map[string]any    `yaml:"values"`
}

// Loader reads configuration files from dir.
type Loader struct {
	dir string
}

// NewLoader returns a loader for dir. An empty dir uses the XDG config directory.
func NewLoader(dir string) (*Loader, error) {
	if dir == "" {
		xdg, err := util.GetXDGConfigDir()
		if err != nil {
			return nil, err
		}
		dir = xdg
	}
	return &Loader{dir: dir}, nil
}

// Dir returns the directory the loader reads from.
func (l *Loader) Dir() string {
	return l.dir
}

// Load reads and validates all configuration files.
func (l *Loader) Load(ctx context.Context) (*ports.Configs, error) {
	var cfg ports.Configs

	if err := l.readJSON(ctx, BaseThemeFile, &cfg.BaseTheme); err != nil {
		return nil, err
	}
	if err := l.readJSON(ctx, VisualStylesFile, &cfg.VisualStyles); err != nil {
		return nil, err
	}

	data, err := l.read(ctx, TokensFile)
	if err != nil {
		return nil, err
	}
	var tf tokensFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TokensFile, err)
	}
	if err := validateTokens(&tf); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", TokensFile, err)
	}

	cfg.NeutralSeed = tf.NeutralSeed
	cfg.DataColors = tf.DataColors
	cfg.Fonts = tf.Fonts
	cfg.Values = normalizeValues(tf.Values)

	return &cfg, nil
}

func (l *Loader) readJSON(ctx context.Context, name string, dst any) error {
	data, err := l.read(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// read returns the file from the loader directory, or the embedded default when it does not exist.
func (l *Loader) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	data, err = defaults.ReadFile("defaults/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read default %s: %w", name, err)
	}
	return data, nil
}

func validateTokens(tf *tokensFile) error {
	if tf.NeutralSeed != "" && !color.IsHex(tf.NeutralSeed) {
		return fmt.Errorf("neutralSeed %q: %w", tf.NeutralSeed, color.ErrInvalidColorFormat)
	}
	for i, c := range tf.DataColors {
		if !color.IsHex(c) {
			return fmt.Errorf("dataColors[%d] %q: %w", i, c, color.ErrInvalidColorFormat)
		}
	}
	return nil
}

// normalizeValues converts YAML integers to float64 so value tokens match
// what encoding/json produces for the same document.
func normalizeValues(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if n, ok := v.(int); ok {
			out[k] = float64(n)
			continue
		}
		out[k] = v
	}
	return out
}

// WriteDefaults copies the embedded defaults into the loader directory,
// leaving existing files untouched. It returns the names of written files.
func (l *Loader) WriteDefaults() ([]string, error) {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	var written []string
	for _, name := range []string{BaseThemeFile, VisualStylesFile, TokensFile} {
		dest := filepath.Join(l.dir, name)
		if _, err := os.Stat(dest); err == nil {
			continue
		}
		data, err := defaults.ReadFile("defaults/" + name)
		if err != nil {
			return written, fmt.Errorf("failed to read default %s: %w", name, err)
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}
