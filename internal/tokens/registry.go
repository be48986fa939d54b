// Package tokens maps symbolic design tokens such as "@bg-primary" to colors
// for a given mode and palette set.
package tokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emiliopalmerini/themestudio/internal/palette"
)

// Mode is the color scheme a token is resolved for.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode accepts "light" or "dark" (case-insensitive). Empty means light.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return "", fmt.Errorf("unknown mode %q: expected light or dark", s)
	}
}

// Palettes is the input every token resolver works from. Neutral may be nil.
type Palettes struct {
	Neutral    palette.Palette
	DataColors []string
}

// Category groups tokens for discovery.
type Category string

const (
	CategoryBackgrounds    Category = "Backgrounds"
	CategoryText           Category = "Text"
	CategoryBorders        Category = "Borders"
	CategoryForeground     Category = "Foreground"
	CategoryVisualElements Category = "Visual Elements"
	CategoryStructural     Category = "Structural"
)

// ColorFunc resolves a token for one mode. Implementations must be total:
// a missing palette or shade yields a hardcoded fallback, never a panic.
type ColorFunc func(Palettes) string

// Definition describes a registered token.
type Definition struct {
	Name     string
	Category Category
	Light    ColorFunc
	Dark     ColorFunc
}

func neutral(shade, fallback string) ColorFunc {
	return func(p Palettes) string {
		return p.Neutral.Shade(shade, fallback)
	}
}

func dataColor(i int, fallback string) ColorFunc {
	return func(p Palettes) string {
		if i < len(p.DataColors) && p.DataColors[i] != "" {
			return p.DataColors[i]
		}
		return fallback
	}
}

func fixed(hex string) ColorFunc {
	return func(Palettes) string { return hex }
}

var registry = map[string]Definition{
	// Backgrounds
	"@bg-primary":   {"Primary background", CategoryBackgrounds, fixed("#ffffff"), neutral("950", "#0a0a0a")},
	"@bg-secondary": {"Secondary background", CategoryBackgrounds, neutral("25", "#fcfcfc"), neutral("900", "#171717")},
	"@bg-tertiary":  {"Tertiary background", CategoryBackgrounds, neutral("50", "#f5f5f5"), neutral("800", "#262626")},
	"@bg-hover":     {"Hover background", CategoryBackgrounds, neutral("100", "#e5e5e5"), neutral("800", "#262626")},
	"@bg-selected":  {"Selected background", CategoryBackgrounds, neutral("200", "#d4d4d4"), neutral("700", "#404040")},
	"@bg-inverse":   {"Inverse background", CategoryBackgrounds, neutral("900", "#171717"), neutral("50", "#f5f5f5")},

	// Text
	"@text-primary":   {"Primary text", CategoryText, neutral("900", "#1a1a1a"), neutral("25", "#fafafa")},
	"@text-secondary": {"Secondary text", CategoryText, neutral("700", "#404040"), neutral("200", "#d4d4d4")},
	"@text-tertiary":  {"Tertiary text", CategoryText, neutral("500", "#737373"), neutral("400", "#a3a3a3")},
	"@text-disabled":  {"Disabled text", CategoryText, neutral("300", "#b3b3b3"), neutral("600", "#525252")},
	"@text-inverse":   {"Inverse text", CategoryText, neutral("25", "#fafafa"), neutral("900", "#1a1a1a")},
	"@text-title":     {"Title text", CategoryText, neutral("950", "#0a0a0a"), fixed("#ffffff")},

	// Borders
	"@border-primary":   {"Primary border", CategoryBorders, neutral("200", "#d4d4d4"), neutral("700", "#404040")},
	"@border-secondary": {"Secondary border", CategoryBorders, neutral("100", "#e5e5e5"), neutral("800", "#262626")},
	"@border-strong":    {"Strong border", CategoryBorders, neutral("400", "#a3a3a3"), neutral("500", "#737373")},
	"@border-focus":     {"Focus border", CategoryBorders, dataColor(0, "#2568e8"), dataColor(0, "#2568e8")},

	// Foreground
	"@fg-primary":   {"Primary foreground", CategoryForeground, dataColor(0, "#2568e8"), dataColor(0, "#2568e8")},
	"@fg-secondary": {"Secondary foreground", CategoryForeground, dataColor(1, "#12239e"), dataColor(1, "#4f6bed")},
	"@fg-accent":    {"Accent foreground", CategoryForeground, dataColor(2, "#e66c37"), dataColor(2, "#e66c37")},
	"@fg-muted":     {"Muted foreground", CategoryForeground, neutral("400", "#a3a3a3"), neutral("600", "#525252")},

	// Visual elements
	"@gridline":      {"Gridlines", CategoryVisualElements, neutral("100", "#e5e5e5"), neutral("800", "#262626")},
	"@axis-line":     {"Axis line", CategoryVisualElements, neutral("300", "#b3b3b3"), neutral("600", "#525252")},
	"@axis-label":    {"Axis label", CategoryVisualElements, neutral("600", "#525252"), neutral("300", "#b3b3b3")},
	"@data-label":    {"Data label", CategoryVisualElements, neutral("700", "#404040"), neutral("200", "#d4d4d4")},
	"@tooltip-bg":    {"Tooltip background", CategoryVisualElements, neutral("900", "#171717"), neutral("100", "#e5e5e5")},
	"@tooltip-text":  {"Tooltip text", CategoryVisualElements, neutral("25", "#fafafa"), neutral("950", "#0a0a0a")},
	"@legend-text":   {"Legend text", CategoryVisualElements, neutral("700", "#404040"), neutral("200", "#d4d4d4")},
	"@slicer-accent": {"Slicer accent", CategoryVisualElements, dataColor(0, "#2568e8"), dataColor(0, "#2568e8")},

	// Structural
	"@visual-bg":      {"Visual background", CategoryStructural, fixed("#ffffff"), neutral("900", "#171717")},
	"@visual-border":  {"Visual border", CategoryStructural, neutral("200", "#d4d4d4"), neutral("700", "#404040")},
	"@page-bg":        {"Page background", CategoryStructural, neutral("50", "#f5f5f5"), neutral("950", "#0a0a0a")},
	"@header-bg":      {"Header background", CategoryStructural, neutral("25", "#fcfcfc"), neutral("900", "#171717")},
	"@outspace":       {"Outspace", CategoryStructural, neutral("100", "#e5e5e5"), neutral("950", "#0a0a0a")},
	"@filter-pane-bg": {"Filter pane background", CategoryStructural, neutral("25", "#fcfcfc"), neutral("900", "#171717")},
}

func normalize(token string) string {
	if strings.HasPrefix(token, "@") {
		return token
	}
	return "@" + token
}

// Lookup returns the definition for token, with or without the leading '@'.
func Lookup(token string) (Definition, bool) {
	def, ok := registry[normalize(token)]
	return def, ok
}

// Resolve runs the token's resolver for mode. The boolean is false when the
// token is not registered; callers fall through to their next tier.
func Resolve(token string, mode Mode, palettes Palettes) (string, bool) {
	def, ok := Lookup(token)
	if !ok {
		return "", false
	}
	if mode == ModeDark {
		return def.Dark(palettes), true
	}
	return def.Light(palettes), true
}

// Option is the discovery view of a registered token.
type Option struct {
	Token       string   `json:"token"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

var categoryOrder = map[Category]int{
	CategoryBackgrounds:    0,
	CategoryText:           1,
	CategoryBorders:        2,
	CategoryForeground:     3,
	CategoryVisualElements: 4,
	CategoryStructural:     5,
}

// Options lists every registered token ordered by category, then token.
func Options() []Option {
	out := make([]Option, 0, len(registry))
	for token, def := range registry {
		out = append(out, Option{Token: token, Description: def.Name, Category: def.Category})
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := categoryOrder[out[i].Category], categoryOrder[out[j].Category]
		if ci != cj {
			return ci < cj
		}
		return out[i].Token < out[j].Token
	})
	return out
}
