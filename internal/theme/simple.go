package theme

import (
	"context"
	"fmt"

	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

// brandDataShades picks data colors from a brand ramp, strongest first.
var brandDataShades = []string{"500", "700", "300", "800", "400", "600", "200", "900"}

// SimpleRequest generates a theme from a single brand color.
type SimpleRequest struct {
	Name       string
	Mode       tokens.Mode
	BrandHex   string
	NeutralHex string
}

// SimpleGenerator derives data colors from one brand color and delegates to a Generator.
type SimpleGenerator struct {
	generator *Generator
}

func NewSimpleGenerator(g *Generator) *SimpleGenerator {
	return &SimpleGenerator{generator: g}
}

// Generate builds the brand ramp, picks data colors from it and generates the theme.
func (s *SimpleGenerator) Generate(ctx context.Context, req SimpleRequest) (*Result, error) {
	brand, err := palette.GenerateBrand(req.BrandHex)
	if err != nil {
		return nil, fmt.Errorf("brand seed: %w", err)
	}

	return s.generator.Generate(ctx, Request{
		Name:       req.Name,
		Mode:       req.Mode,
		NeutralHex: req.NeutralHex,
		DataColors: DataColorsFromBrand(brand),
	})
}

// DataColorsFromBrand returns the data color sequence for a brand ramp.
func DataColorsFromBrand(brand palette.Palette) []string {
	out := make([]string, 0, len(brandDataShades))
	for _, shade := range brandDataShades {
		if hex, ok := brand[shade]; ok {
			out = append(out, hex)
		}
	}
	return out
}
