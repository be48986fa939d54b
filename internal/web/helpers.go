package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/theme"
	"github.com/emiliopalmerini/themestudio/internal/web/templates"
)

// errBadRequest marks request errors that are the caller's fault.
var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps validation errors to 400 and everything else to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, color.ErrInvalidColorFormat),
		errors.Is(err, theme.ErrInvalidPalette),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

// buildPreviewView converts generated preview data into the template view model.
func buildPreviewView(data *theme.PreviewData) templates.PreviewView {
	view := templates.PreviewView{
		Mode:        string(data.Mode),
		NeutralName: data.Neutral.Name,
		Neutral:     swatches(data.Neutral.Palette),
		Brand:       swatches(data.Brand),
	}
	if data.Brand != nil {
		if name, err := palette.BrandColorName(data.Brand.Shade("500", "")); err == nil {
			view.BrandName = name
		}
	}

	var current *templates.TokenGroup
	for _, tv := range data.Tokens {
		if current == nil || current.Category != string(tv.Category) {
			view.Groups = append(view.Groups, templates.TokenGroup{Category: string(tv.Category)})
			current = &view.Groups[len(view.Groups)-1]
		}
		current.Tokens = append(current.Tokens, templates.TokenSwatch{
			Token:       tv.Token,
			Description: tv.Description,
			Hex:         tv.Value,
		})
	}
	return view
}

func swatches(p palette.Palette) []templates.Swatch {
	if p == nil {
		return nil
	}
	ordered := p.Ordered()
	out := make([]templates.Swatch, len(ordered))
	for i, sw := range ordered {
		out[i] = templates.Swatch{Shade: sw.Shade, Hex: sw.Hex}
	}
	return out
}
