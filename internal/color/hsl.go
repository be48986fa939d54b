package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL uses degrees for H and percentages (0-100) for S and L.
type HSL struct {
	H, S, L float64
}

// HexToHSL parses a hex color into HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	h, s, l := c.Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}, nil
}

// HSLToHex converts HSL back to a hex color.
func HSLToHex(c HSL) string {
	col := colorful.Hsl(c.H, Clamp(c.S, 0, 100)/100, Clamp(c.L, 0, 100)/100).Clamped()
	return RGBToHex(col.R*255, col.G*255, col.B*255)
}

// AdjustBrightness shifts HSL lightness relative to its current value:
// percent 0.5 on L=40 yields L=60, -0.5 yields L=20. The result is clamped to [0,100].
func AdjustBrightness(hex string, percent float64) (string, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", fmt.Errorf("adjusting brightness: %w", err)
	}
	hsl.L = Clamp(hsl.L+hsl.L*percent, 0, 100)
	return HSLToHex(hsl), nil
}
