package themedoc

import (
	"strings"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/util"
)

// ResolverFunc maps a token name (without the leading '@') to its value.
// A nil return is written into the document as-is.
type ResolverFunc func(token string) any

// Replace returns a copy of tree with tokens and ThemeDataColor expressions
// resolved. dataColors == nil disables expression resolution. The input is
// never modified and no keys or array elements are added or removed.
func Replace(tree any, resolve ResolverFunc, dataColors []string) any {
	switch Classify(tree) {
	case Token:
		return resolve(strings.TrimPrefix(tree.(string), "@"))
	case Array:
		return replaceArray(tree.([]any), resolve, dataColors)
	case DataColorExpr:
		if dataColors != nil {
			if hex, ok := ResolveThemeDataColor(tree, dataColors); ok {
				return hex
			}
		}
		return replaceObject(tree.(map[string]any), resolve, dataColors)
	case SolidColor:
		return replaceSolidColor(tree.(map[string]any), resolve, dataColors)
	case Object:
		return replaceObject(tree.(map[string]any), resolve, dataColors)
	case Literal:
		return tree
	}
	return tree
}

func replaceArray(arr []any, resolve ResolverFunc, dataColors []string) []any {
	out := make([]any, len(arr))
	for i, v := range arr {
		out[i] = Replace(v, resolve, dataColors)
	}
	return out
}

// replaceObject walks every key. Keys whose new value is nil are kept.
func replaceObject(obj map[string]any, resolve ResolverFunc, dataColors []string) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = Replace(v, resolve, dataColors)
	}
	return out
}

func replaceSolidColor(obj map[string]any, resolve ResolverFunc, dataColors []string) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		if k != "solid" {
			out[k] = Replace(v, resolve, dataColors)
		}
	}

	solid := obj["solid"].(map[string]any)
	newSolid := make(map[string]any, len(solid))
	for k, v := range solid {
		if k == "color" {
			newSolid[k] = resolveColorValue(v, resolve, dataColors)
			continue
		}
		newSolid[k] = Replace(v, resolve, dataColors)
	}
	out["solid"] = newSolid
	return out
}

func resolveColorValue(v any, resolve ResolverFunc, dataColors []string) any {
	switch Classify(v) {
	case Token:
		return resolve(strings.TrimPrefix(v.(string), "@"))
	case DataColorExpr:
		if dataColors != nil {
			if hex, ok := ResolveThemeDataColor(v, dataColors); ok {
				return hex
			}
		}
		return replaceObject(v.(map[string]any), resolve, dataColors)
	default:
		return Replace(v, resolve, dataColors)
	}
}

// ResolveThemeDataColor resolves {"expr": {"ThemeDataColor": {"ColorId": n, "Percent": p}}}
// against dataColors. ColorId is a zero-based index; a missing, non-integral
// or out-of-range ColorId reports false. A nonzero Percent shifts HSL
// lightness relative to the base color.
func ResolveThemeDataColor(expr any, dataColors []string) (string, bool) {
	obj, ok := expr.(map[string]any)
	if !ok {
		return "", false
	}
	params, ok := dataColorParams(obj)
	if !ok {
		return "", false
	}

	id, ok := util.ToInt64(params["ColorId"])
	if !ok || id < 0 || id >= int64(len(dataColors)) {
		return "", false
	}
	base := dataColors[id]

	percent, ok := util.ToFloat64(params["Percent"])
	if !ok || percent == 0 {
		return base, true
	}
	adjusted, err := color.AdjustBrightness(base, percent)
	if err != nil {
		return base, true
	}
	return adjusted, true
}
