package tokens

import (
	"strconv"
	"strings"
)

// Tier identifies which resolution step answered a token.
type Tier string

const (
	TierRegistry  Tier = "registry"
	TierFont      Tier = "font"
	TierValue     Tier = "value"
	TierDataColor Tier = "data_color"
	TierPrefix    Tier = "prefix"
	TierFallback  Tier = "fallback"
)

// DefaultFonts are used for font tokens the caller did not configure.
var DefaultFonts = map[string]string{
	"font-primary":   "Segoe UI",
	"font-secondary": "Segoe UI Semibold",
	"font-heading":   "Segoe UI Semibold",
	"font-body":      "Segoe UI",
	"font-label":     "Segoe UI",
	"font-title":     "DIN",
}

const defaultFont = "Segoe UI"

// prefixFallbacks maps a token prefix to the registry token that stands in
// for unknown members of that family.
var prefixFallbacks = []struct {
	prefix string
	token  string
}{
	{"bg-", "@bg-primary"},
	{"background-", "@bg-primary"},
	{"text-", "@text-primary"},
	{"border-", "@border-primary"},
	{"fg-", "@fg-primary"},
	{"accent-", "@fg-accent"},
	{"tooltip-", "@tooltip-bg"},
	{"axis-", "@axis-line"},
	{"visual-", "@visual-bg"},
	{"page-", "@page-bg"},
}

// Resolver resolves tokens through the registry, font tokens, direct value
// tokens, data-color index tokens, and finally prefix-based fallbacks.
// It never fails: unmatched tokens get a neutral color suited to the mode.
type Resolver struct {
	Mode     Mode
	Palettes Palettes
	// Fonts overrides DefaultFonts; keys are token names without '@'.
	Fonts map[string]string
	// Values holds direct value tokens (numbers, strings, booleans).
	Values map[string]any
}

// NewResolver builds a resolver for mode and palettes with default fonts.
func NewResolver(mode Mode, palettes Palettes) *Resolver {
	return &Resolver{Mode: mode, Palettes: palettes}
}

// Resolve satisfies the tree walker's resolver signature.
func (r *Resolver) Resolve(token string) any {
	v, _ := r.Lookup(token)
	return v
}

// Lookup resolves token (with or without '@') and reports the tier used.
func (r *Resolver) Lookup(token string) (any, Tier) {
	name := strings.TrimPrefix(token, "@")

	if hex, ok := Resolve(name, r.Mode, r.Palettes); ok {
		return hex, TierRegistry
	}

	if strings.HasPrefix(name, "font-") {
		if f, ok := r.Fonts[name]; ok && f != "" {
			return f, TierFont
		}
		if f, ok := DefaultFonts[name]; ok {
			return f, TierFont
		}
		return defaultFont, TierFont
	}

	if v, ok := r.Values[name]; ok {
		return v, TierValue
	}

	if hex, ok := r.dataColor(name); ok {
		return hex, TierDataColor
	}

	for _, pf := range prefixFallbacks {
		if strings.HasPrefix(name, pf.prefix) {
			hex, _ := Resolve(pf.token, r.Mode, r.Palettes)
			return hex, TierPrefix
		}
	}

	return r.fallback(), TierFallback
}

// dataColor handles "data-color-N" and "dataN", both 1-based.
func (r *Resolver) dataColor(name string) (string, bool) {
	var digits string
	switch {
	case strings.HasPrefix(name, "data-color-"):
		digits = strings.TrimPrefix(name, "data-color-")
	case strings.HasPrefix(name, "data") && len(name) > 4:
		digits = name[4:]
	default:
		return "", false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > len(r.Palettes.DataColors) {
		return "", false
	}
	return r.Palettes.DataColors[n-1], true
}

func (r *Resolver) fallback() string {
	if r.Mode == ModeDark {
		return r.Palettes.Neutral.Shade("400", "#a3a3a3")
	}
	return r.Palettes.Neutral.Shade("600", "#525252")
}
