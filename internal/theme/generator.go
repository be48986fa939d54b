package theme

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/ports"
	"github.com/emiliopalmerini/themestudio/internal/themedoc"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

// DefaultName is used when a request carries no theme name.
const DefaultName = "Custom Theme"

// ErrInvalidPalette is returned when an imported neutral palette is incomplete.
var ErrInvalidPalette = errors.New("invalid palette")

// Request describes a theme to generate. Zero values fall back to the loaded configuration.
type Request struct {
	Name string
	Mode tokens.Mode

	// NeutralPalette is an imported ramp. It takes precedence over NeutralHex.
	NeutralPalette palette.Palette
	NeutralHex     string

	DataColors []string
}

// Result is a generated theme.
type Result struct {
	Document     map[string]any
	Neutral      palette.Named
	Mode         tokens.Mode
	DataColors   []string
	TokensByTier map[tokens.Tier]int64
}

// Generator builds full theme documents.
type Generator struct {
	configs *ConfigCache
	metrics ports.MetricsExporter
}

func NewGenerator(configs *ConfigCache, metrics ports.MetricsExporter) *Generator {
	return &Generator{configs: configs, metrics: metrics}
}

// Generate validates every input color before doing any work, then resolves
// the base theme and visual styles against the request's palettes.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	cfg, err := g.configs.Init(ctx)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = tokens.ModeLight
	}

	dataColors, err := normalizeColors(req.DataColors, cfg.DataColors)
	if err != nil {
		return nil, err
	}

	neutral, err := g.neutral(ctx, req, cfg)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	palettes := tokens.Palettes{Neutral: neutral.Palette, DataColors: dataColors}
	resolver := &tokens.Resolver{Mode: mode, Palettes: palettes, Fonts: cfg.Fonts, Values: cfg.Values}
	counting := newTierCounter(resolver)

	doc := make(map[string]any, len(cfg.BaseTheme)+3)
	for k, v := range cfg.BaseTheme {
		doc[k] = v
	}
	doc["visualStyles"] = cfg.VisualStyles

	resolved, ok := themedoc.Replace(doc, counting.Resolve, dataColors).(map[string]any)
	if !ok {
		return nil, errors.New("base theme did not resolve to an object")
	}

	name := req.Name
	if name == "" {
		name = DefaultName
	}
	resolved["name"] = name
	resolved["dataColors"] = append([]string(nil), dataColors...)

	res := &Result{
		Document:     resolved,
		Neutral:      neutral,
		Mode:         mode,
		DataColors:   dataColors,
		TokensByTier: counting.Counts(),
	}

	g.export(ctx, name, res, time.Since(start))
	return res, nil
}

func (g *Generator) neutral(ctx context.Context, req Request, cfg *Configs) (palette.Named, error) {
	if req.NeutralPalette != nil {
		if !palette.Validate(req.NeutralPalette) {
			return palette.Named{}, fmt.Errorf("neutral palette: %w", ErrInvalidPalette)
		}
		name, err := palette.ColorName(req.NeutralPalette.Shade("500", ""))
		if err != nil {
			name = "Imported"
		}
		return palette.Named{Name: name, Palette: req.NeutralPalette}, nil
	}

	seed := req.NeutralHex
	if seed == "" {
		seed = cfg.NeutralSeed
	}
	start := time.Now()
	named, err := palette.GenerateNeutral(seed)
	if err != nil {
		return palette.Named{}, fmt.Errorf("neutral seed: %w", err)
	}
	if g.metrics != nil {
		if err := g.metrics.ExportPaletteMetrics(ctx, &ports.PaletteMetrics{
			Kind:     string(palette.KindNeutral),
			Seed:     seed,
			Duration: time.Since(start),
		}); err != nil {
			log.Printf("Warning: failed to export palette metrics: %v", err)
		}
	}
	return named, nil
}

func (g *Generator) export(ctx context.Context, name string, res *Result, d time.Duration) {
	if g.metrics == nil {
		return
	}
	byTier := make(map[string]int64, len(res.TokensByTier))
	for tier, n := range res.TokensByTier {
		byTier[string(tier)] = n
	}
	err := g.metrics.ExportThemeMetrics(ctx, &ports.ThemeMetrics{
		ThemeName:    name,
		Mode:         string(res.Mode),
		DataColors:   len(res.DataColors),
		TokensByTier: byTier,
		Duration:     d,
	})
	if err != nil {
		log.Printf("Warning: failed to export theme metrics: %v", err)
	}
}

// normalizeColors validates colors (or defaults when colors is empty) and
// returns them in canonical lowercase form.
func normalizeColors(colors, defaults []string) ([]string, error) {
	if len(colors) == 0 {
		colors = defaults
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		hex, err := color.Normalize(c)
		if err != nil {
			return nil, fmt.Errorf("data color %d: %w", i+1, err)
		}
		out[i] = hex
	}
	return out, nil
}

// tierCounter wraps a tokens.Resolver and counts which tier answered each token.
type tierCounter struct {
	resolver *tokens.Resolver

	mu     sync.Mutex
	counts map[tokens.Tier]int64
}

func newTierCounter(r *tokens.Resolver) *tierCounter {
	return &tierCounter{resolver: r, counts: make(map[tokens.Tier]int64)}
}

func (c *tierCounter) Resolve(token string) any {
	v, tier := c.resolver.Lookup(token)
	c.mu.Lock()
	c.counts[tier]++
	c.mu.Unlock()
	return v
}

func (c *tierCounter) Counts() map[tokens.Tier]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[tokens.Tier]int64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
