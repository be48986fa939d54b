package palette

import "github.com/emiliopalmerini/themestudio/internal/color"

// hueName buckets an HSL hue (degrees) into a base color family.
func hueName(h float64) string {
	switch {
	case h < 15 || h >= 345:
		return "Red"
	case h < 45:
		return "Orange"
	case h < 70:
		return "Yellow"
	case h < 170:
		return "Green"
	case h < 260:
		return "Blue"
	case h < 300:
		return "Purple"
	default:
		return "Pink"
	}
}

func grayName(l float64) string {
	switch {
	case l < 30:
		return "Charcoal"
	case l > 70:
		return "Light Gray"
	default:
		return "Gray"
	}
}

// ColorName names a neutral seed, e.g. "Dark Blue" or "Charcoal".
func ColorName(hex string) (string, error) {
	hsl, err := color.HexToHSL(hex)
	if err != nil {
		return "", err
	}
	if hsl.S < 15 {
		return grayName(hsl.L), nil
	}
	base := hueName(hsl.H)
	switch {
	case hsl.L < 30:
		return "Dark " + base, nil
	case hsl.L > 70:
		return "Light " + base, nil
	}
	return base, nil
}

// BrandColorName names a brand seed; highly saturated mid tones get "Vibrant".
func BrandColorName(hex string) (string, error) {
	hsl, err := color.HexToHSL(hex)
	if err != nil {
		return "", err
	}
	if hsl.S < 20 {
		return grayName(hsl.L), nil
	}
	base := hueName(hsl.H)
	switch {
	case hsl.L < 30:
		return "Dark " + base, nil
	case hsl.L > 70:
		return "Light " + base, nil
	case hsl.S > 80:
		return "Vibrant " + base, nil
	}
	return base, nil
}
