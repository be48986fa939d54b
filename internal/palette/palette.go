// Package palette generates 12-step shade ramps from a single seed color.
package palette

import "strings"

// Shades lists the shade keys from lightest to darkest.
var Shades = []string{"25", "50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// Palette maps a shade key to a "#rrggbb" color. Palettes returned by this
// package are freshly allocated; callers that need a variant build a new one.
type Palette map[string]string

// Named pairs a neutral palette with its generated display name.
type Named struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// Kind selects the ramp flavor.
type Kind string

const (
	KindNeutral Kind = "neutral"
	KindBrand   Kind = "brand"
)

// Swatch is one entry of an ordered palette.
type Swatch struct {
	Shade string
	Hex   string
}

// Ordered returns the palette entries from light to dark. Missing shades are skipped.
func (p Palette) Ordered() []Swatch {
	out := make([]Swatch, 0, len(Shades))
	for _, shade := range Shades {
		if hex, ok := p[shade]; ok {
			out = append(out, Swatch{Shade: shade, Hex: hex})
		}
	}
	return out
}

// Shade returns the color at key, or fallback when the palette is nil or lacks it.
func (p Palette) Shade(key, fallback string) string {
	if hex, ok := p[key]; ok && hex != "" {
		return hex
	}
	return fallback
}

// Validate reports whether v looks like a complete palette: all 12 shade keys,
// each a string starting with '#' of length 4 or 7.
func Validate(v any) bool {
	var lookup func(string) (any, bool)
	switch p := v.(type) {
	case Palette:
		if p == nil {
			return false
		}
		lookup = func(k string) (any, bool) { s, ok := p[k]; return s, ok }
	case map[string]string:
		if p == nil {
			return false
		}
		lookup = func(k string) (any, bool) { s, ok := p[k]; return s, ok }
	case map[string]any:
		if p == nil {
			return false
		}
		lookup = func(k string) (any, bool) { s, ok := p[k]; return s, ok }
	default:
		return false
	}

	for _, shade := range Shades {
		raw, ok := lookup(shade)
		if !ok {
			return false
		}
		s, ok := raw.(string)
		if !ok || !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
			return false
		}
	}
	return true
}

// FromMap converts decoded JSON into a Palette, keeping only string values.
func FromMap(m map[string]any) Palette {
	p := make(Palette, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			p[k] = s
		}
	}
	return p
}
