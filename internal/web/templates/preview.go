package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Preview renders the full swatch preview page.
func Preview(v PreviewView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		bg, fg := "#ffffff", "#1a1a1a"
		if v.Mode == "dark" {
			bg, fg = "#0a0a0a", "#f5f5f5"
		}
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>themestudio preview</title>`+
			`<style>body{font-family:"Segoe UI",sans-serif;background:%s;color:%s;margin:2rem}`+
			`.ramp{display:flex;gap:2px;margin-bottom:1.5rem}.chip{flex:1;padding:.75rem .25rem;font-size:.75rem;text-align:center}`+
			`table{border-collapse:collapse}td{padding:.25rem .75rem}</style></head><body>`, bg, fg); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<h1>Theme preview <small>(%s)</small></h1><p><a href="%s">toggle mode</a></p>`,
			templ.EscapeString(v.Mode), templ.EscapeString(string(modeToggleURL(v)))); err != nil {
			return err
		}

		if err := Ramp(v.NeutralName, v.Neutral).Render(ctx, w); err != nil {
			return err
		}
		if len(v.Brand) > 0 {
			if err := Ramp(v.BrandName, v.Brand).Render(ctx, w); err != nil {
				return err
			}
		}
		for _, g := range v.Groups {
			if err := TokenTable(g).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Ramp renders a palette as a strip of chips, light to dark.
func Ramp(name string, swatches []Swatch) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h2>%s</h2><div class="ramp">`, templ.EscapeString(name)); err != nil {
			return err
		}
		for _, sw := range swatches {
			if _, err := fmt.Fprintf(w, `<div class="chip" style="%s" title="%s">%s<br>%s</div>`,
				templ.EscapeString(swatchStyle(sw.Hex)),
				templ.EscapeString(sw.Hex),
				templ.EscapeString(sw.Shade),
				templ.EscapeString(sw.Hex)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// TokenTable renders one token category with its resolved colors.
func TokenTable(g TokenGroup) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h3>%s</h3><table>`, templ.EscapeString(g.Category)); err != nil {
			return err
		}
		for _, t := range g.Tokens {
			if _, err := fmt.Fprintf(w, `<tr><td><code>%s</code></td><td>%s</td><td style="%s">%s</td></tr>`,
				templ.EscapeString(t.Token),
				templ.EscapeString(t.Description),
				templ.EscapeString(swatchStyle(t.Hex)),
				templ.EscapeString(t.Hex)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table>`)
		return err
	})
}
