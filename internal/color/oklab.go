package color

import "math"

// SRGBToLinear applies the inverse sRGB transfer function to a channel in [0,1].
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB transfer function to a linear channel.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// RGBToOklab converts 8-bit sRGB to OKLab using Björn Ottosson's reference matrices.
func RGBToOklab(r, g, b int) Oklab {
	lr := SRGBToLinear(float64(r) / 255)
	lg := SRGBToLinear(float64(g) / 255)
	lb := SRGBToLinear(float64(b) / 255)

	l := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	m := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	s := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	return Oklab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// OklabToRGB converts OKLab back to 8-bit sRGB. Out-of-gamut colors are
// clamped per channel to the nearest representable value.
func OklabToRGB(c Oklab) RGB {
	l := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l, m, s = l*l*l, m*m*m, s*s*s

	lr := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return RGB{
		R: channel(LinearToSRGB(lr) * 255),
		G: channel(LinearToSRGB(lg) * 255),
		B: channel(LinearToSRGB(lb) * 255),
	}
}

// OklabToOklch converts to polar form with the hue normalized to [0,360).
func OklabToOklch(c Oklab) Oklch {
	h := math.Atan2(c.B, c.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return Oklch{
		L: c.L,
		C: math.Sqrt(c.A*c.A + c.B*c.B),
		H: h,
	}
}

// OklchToOklab converts polar OKLCH back to Cartesian OKLab.
func OklchToOklab(c Oklch) Oklab {
	rad := c.H * math.Pi / 180
	return Oklab{
		L: c.L,
		A: c.C * math.Cos(rad),
		B: c.C * math.Sin(rad),
	}
}

// HexToOklch parses a hex color and converts it to OKLCH.
func HexToOklch(hex string) (Oklch, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Oklch{}, err
	}
	return OklabToOklch(RGBToOklab(rgb.R, rgb.G, rgb.B)), nil
}

// OklchToHex converts OKLCH to a hex color, clamping out-of-gamut values.
func OklchToHex(l, c, h float64) string {
	return OklabToRGB(OklchToOklab(Oklch{L: l, C: c, H: h})).Hex()
}
