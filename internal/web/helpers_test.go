package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/theme"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid color", fmt.Errorf("seed: %w", color.ErrInvalidColorFormat), http.StatusBadRequest},
		{"invalid palette", fmt.Errorf("neutral: %w", theme.ErrInvalidPalette), http.StatusBadRequest},
		{"bad request", fmt.Errorf("%w: body", errBadRequest), http.StatusBadRequest},
		{"other", errors.New("disk"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildPreviewView_GroupsByCategory(t *testing.T) {
	data, err := theme.BuildPreview(tokens.ModeLight, "#808080", "#2568e8")
	if err != nil {
		t.Fatalf("BuildPreview() error = %v", err)
	}

	view := buildPreviewView(data)

	if view.NeutralName != "Gray" || view.BrandName == "" {
		t.Errorf("names = %q / %q", view.NeutralName, view.BrandName)
	}
	if len(view.Neutral) != len(palette.Shades) || len(view.Brand) != len(palette.Shades) {
		t.Errorf("swatches = %d / %d", len(view.Neutral), len(view.Brand))
	}
	if len(view.Groups) != 6 {
		t.Fatalf("len(Groups) = %d, want 6", len(view.Groups))
	}
	total := 0
	seen := map[string]bool{}
	for _, g := range view.Groups {
		if seen[g.Category] {
			t.Errorf("category %q split into several groups", g.Category)
		}
		seen[g.Category] = true
		total += len(g.Tokens)
	}
	if total != len(tokens.Options()) {
		t.Errorf("grouped %d tokens, want %d", total, len(tokens.Options()))
	}
}

func TestBuildPreviewView_NoBrand(t *testing.T) {
	data, err := theme.BuildPreview(tokens.ModeDark, "#808080", "")
	if err != nil {
		t.Fatalf("BuildPreview() error = %v", err)
	}
	view := buildPreviewView(data)
	if view.Brand != nil || view.BrandName != "" {
		t.Errorf("unexpected brand data: %+v", view.Brand)
	}
	if view.Mode != "dark" {
		t.Errorf("mode = %q", view.Mode)
	}
}
