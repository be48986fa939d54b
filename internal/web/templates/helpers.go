package templates

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/themestudio/internal/color"
)

// textColorFor picks black or white text for legibility on bg.
func textColorFor(bg string) string {
	hsl, err := color.HexToHSL(bg)
	if err != nil {
		return "#000000"
	}
	if hsl.L > 55 {
		return "#000000"
	}
	return "#ffffff"
}

// swatchStyle returns an inline style for a color chip. Non-hex values render gray.
func swatchStyle(hex string) string {
	if !color.IsHex(hex) {
		hex = "#808080"
	}
	return fmt.Sprintf("background:%s;color:%s", hex, textColorFor(hex))
}

func modeToggleURL(v PreviewView) templ.SafeURL {
	next := "dark"
	if v.Mode == "dark" {
		next = "light"
	}
	q := url.Values{"mode": {next}}
	if v.NeutralSeed != "" {
		q.Set("neutral", v.NeutralSeed)
	}
	if v.BrandSeed != "" {
		q.Set("brand", v.BrandSeed)
	}
	return templ.SafeURL("?" + q.Encode())
}
