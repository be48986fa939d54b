package palette

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/themestudio/internal/color"
)

// step holds the tuned target lightness and chroma retention for a shade.
type step struct {
	lightness float64
	chroma    float64
}

// These tables define the product's palettes; do not retune.
var neutralSteps = map[string]step{
	"25":  {0.98, 0.10},
	"50":  {0.95, 0.15},
	"100": {0.90, 0.25},
	"200": {0.82, 0.40},
	"300": {0.70, 0.60},
	"400": {0.58, 0.80},
	"500": {0.46, 1.00},
	"600": {0.36, 0.90},
	"700": {0.28, 0.70},
	"800": {0.21, 0.50},
	"900": {0.15, 0.30},
	"950": {0.10, 0.20},
}

var brandSteps = map[string]step{
	"25":  {0.97, 0.15},
	"50":  {0.95, 0.25},
	"100": {0.90, 0.40},
	"200": {0.82, 0.60},
	"300": {0.71, 0.80},
	"400": {0.58, 0.90},
	"500": {0.45, 1.00},
	"600": {0.36, 0.95},
	"700": {0.27, 0.85},
	"800": {0.19, 0.70},
	"900": {0.12, 0.50},
	"950": {0.06, 0.30},
}

type rampParams struct {
	steps     map[string]step
	maxChroma float64
	hueShift  float64
	// baseChroma derives the per-palette chroma from the seed chroma.
	baseChroma func(c0 float64) float64
}

var neutralParams = rampParams{
	steps:      neutralSteps,
	maxChroma:  0.1,
	hueShift:   -20,
	baseChroma: func(c0 float64) float64 { return math.Min(c0*0.25, 0.04) },
}

var brandParams = rampParams{
	steps:      brandSteps,
	maxChroma:  0.4,
	hueShift:   -5,
	baseChroma: func(c0 float64) float64 { return c0 },
}

// GenerateNeutral builds a low-chroma UI gray ramp tinted by the seed and names it.
func GenerateNeutral(hex string) (Named, error) {
	p, err := generate(hex, neutralParams)
	if err != nil {
		return Named{}, fmt.Errorf("generating neutral palette: %w", err)
	}
	name, err := ColorName(hex)
	if err != nil {
		return Named{}, fmt.Errorf("naming neutral palette: %w", err)
	}
	return Named{Name: name, Palette: p}, nil
}

// GenerateBrand builds an accent ramp that keeps most of the seed's chroma.
func GenerateBrand(hex string) (Palette, error) {
	p, err := generate(hex, brandParams)
	if err != nil {
		return nil, fmt.Errorf("generating brand palette: %w", err)
	}
	return p, nil
}

// Generate dispatches on kind.
func Generate(hex string, kind Kind) (Palette, error) {
	switch kind {
	case KindNeutral:
		named, err := GenerateNeutral(hex)
		return named.Palette, err
	case KindBrand:
		return GenerateBrand(hex)
	default:
		return nil, fmt.Errorf("unknown palette kind %q", kind)
	}
}

func generate(hex string, params rampParams) (Palette, error) {
	if hex == "" {
		return nil, fmt.Errorf("%w: empty color", color.ErrInvalidColorFormat)
	}
	seed, err := color.HexToOklch(hex)
	if err != nil {
		return nil, err
	}

	base := params.baseChroma(seed.C)
	p := make(Palette, len(Shades))
	for i, shade := range Shades {
		cfg := params.steps[shade]

		// The curve is evaluated but the tuned table value wins; the
		// shipped palettes depend on it.
		t := float64(i) / float64(len(Shades)-1)
		_ = color.CubicBezier(t, 0.25, 0.75)
		lightness := cfg.lightness

		chroma := color.Clamp(base*cfg.chroma, 0, params.maxChroma)
		shift := (lightness - 0.5) * params.hueShift
		hue := math.Mod(seed.H+shift+360, 360)

		p[shade] = color.OklchToHex(lightness, chroma, hue)
	}
	return p, nil
}

// GenerateMany generates one palette per seed concurrently. The result keeps
// the order of seeds. The first invalid seed fails the whole batch.
func GenerateMany(ctx context.Context, seeds []string, kind Kind) ([]Palette, error) {
	out := make([]Palette, len(seeds))
	g, gctx := errgroup.WithContext(ctx)

	for i, seed := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Generate(seed, kind)
			if err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
			out[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
