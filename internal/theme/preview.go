package theme

import (
	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

// TokenValue is one resolved registry token.
type TokenValue struct {
	Token       string          `json:"token"`
	Description string          `json:"description"`
	Category    tokens.Category `json:"category"`
	Value       string          `json:"value"`
}

// PreviewData is everything the swatch preview renders.
type PreviewData struct {
	Mode    tokens.Mode
	Neutral palette.Named
	Brand   palette.Palette
	Tokens  []TokenValue
}

// Preview resolves every registry token for mode, in discovery order.
func Preview(mode tokens.Mode, palettes tokens.Palettes) []TokenValue {
	opts := tokens.Options()
	out := make([]TokenValue, 0, len(opts))
	for _, opt := range opts {
		hex, _ := tokens.Resolve(opt.Token, mode, palettes)
		out = append(out, TokenValue{
			Token:       opt.Token,
			Description: opt.Description,
			Category:    opt.Category,
			Value:       hex,
		})
	}
	return out
}

// PreviewMap is Preview as a flat token to color map.
func PreviewMap(mode tokens.Mode, palettes tokens.Palettes) map[string]string {
	values := Preview(mode, palettes)
	out := make(map[string]string, len(values))
	for _, v := range values {
		out[v.Token] = v.Value
	}
	return out
}

// BuildPreview generates the palettes for the preview page. brandHex may be empty.
func BuildPreview(mode tokens.Mode, neutralHex, brandHex string) (*PreviewData, error) {
	neutral, err := palette.GenerateNeutral(neutralHex)
	if err != nil {
		return nil, err
	}

	data := &PreviewData{Mode: mode, Neutral: neutral}
	var dataColors []string
	if brandHex != "" {
		brand, err := palette.GenerateBrand(brandHex)
		if err != nil {
			return nil, err
		}
		data.Brand = brand
		dataColors = DataColorsFromBrand(brand)
	}

	data.Tokens = Preview(mode, tokens.Palettes{Neutral: neutral.Palette, DataColors: dataColors})
	return data, nil
}
