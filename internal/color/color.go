// Package color converts between hex, sRGB, linear RGB, OKLab and OKLCH.
//
// Hex strings are the canonical external representation. Output hex is always
// lowercase and prefixed with '#'.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned for anything that is not a 6 digit hex color.
var ErrInvalidColorFormat = errors.New("invalid color format")

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB holds 8-bit channels. Values produced by this package are always in [0,255].
type RGB struct {
	R, G, B int
}

// Oklab is a color in the OKLab perceptual space. L is roughly in [0,1].
type Oklab struct {
	L, A, B float64
}

// Oklch is the cylindrical form of Oklab. H is in degrees, [0,360).
type Oklch struct {
	L, C, H float64
}

// IsHex reports whether s is a 6 digit hex color, with or without '#'.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Normalize returns the canonical "#rrggbb" form of a hex color.
func Normalize(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// HexToRGB parses a 6 digit hex color. The leading '#' is optional.
func HexToRGB(hex string) (RGB, error) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// RGBToHex rounds and clamps each channel to [0,255] independently.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

func channel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(Clamp(math.Round(v), 0, 255))
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// CubicBezier evaluates a single-axis cubic Bézier with endpoints fixed at 0 and 1.
func CubicBezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}
