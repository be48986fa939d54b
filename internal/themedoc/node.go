// Package themedoc resolves design tokens and ThemeDataColor expressions in
// arbitrary JSON theme documents.
//
// Documents are the values produced by encoding/json decoding into any:
// map[string]any, []any, string, float64, bool and nil.
package themedoc

import "strings"

// Kind classifies a document node before it is transformed.
type Kind int

const (
	// Literal is any value that passes through unchanged.
	Literal Kind = iota
	// Token is a string starting with '@'.
	Token
	// Array is a []any.
	Array
	// Object is a map[string]any with no special shape.
	Object
	// SolidColor is an object holding {"solid": {"color": X}}.
	SolidColor
	// DataColorExpr is {"expr": {"ThemeDataColor": {"ColorId": n, "Percent": p}}}.
	DataColorExpr
)

func (k Kind) String() string {
	switch k {
	case Token:
		return "token"
	case Array:
		return "array"
	case Object:
		return "object"
	case SolidColor:
		return "solid_color"
	case DataColorExpr:
		return "data_color_expr"
	default:
		return "literal"
	}
}

// Classify returns the kind of v.
func Classify(v any) Kind {
	switch n := v.(type) {
	case string:
		if strings.HasPrefix(n, "@") {
			return Token
		}
		return Literal
	case []any:
		return Array
	case map[string]any:
		if _, ok := dataColorParams(n); ok {
			return DataColorExpr
		}
		if _, ok := solidColor(n); ok {
			return SolidColor
		}
		return Object
	default:
		return Literal
	}
}

// solidColor returns the "solid" object when obj has the {"solid": {"color": X}} shape.
func solidColor(obj map[string]any) (map[string]any, bool) {
	solid, ok := obj["solid"].(map[string]any)
	if !ok {
		return nil, false
	}
	if _, ok := solid["color"]; !ok {
		return nil, false
	}
	return solid, true
}

// dataColorParams returns the ThemeDataColor parameters of an expression node.
func dataColorParams(obj map[string]any) (map[string]any, bool) {
	expr, ok := obj["expr"].(map[string]any)
	if !ok {
		return nil, false
	}
	params, ok := expr["ThemeDataColor"].(map[string]any)
	return params, ok
}
