package tokens

import (
	"testing"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/palette"
)

func testPalettes(t *testing.T) Palettes {
	t.Helper()
	named, err := palette.GenerateNeutral("#64748b")
	if err != nil {
		t.Fatalf("GenerateNeutral: %v", err)
	}
	return Palettes{
		Neutral:    named.Palette,
		DataColors: []string{"#118dff", "#12239e", "#e66c37"},
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeLight, false},
		{"light", ModeLight, false},
		{"DARK", ModeDark, false},
		{" dark ", ModeDark, false},
		{"sepia", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolve_UsesNeutralShades(t *testing.T) {
	p := testPalettes(t)

	got, ok := Resolve("@text-primary", ModeLight, p)
	if !ok {
		t.Fatal("expected @text-primary to be registered")
	}
	if got != p.Neutral["900"] {
		t.Errorf("light @text-primary = %s, want shade 900 %s", got, p.Neutral["900"])
	}

	got, _ = Resolve("text-primary", ModeDark, p)
	if got != p.Neutral["25"] {
		t.Errorf("dark text-primary = %s, want shade 25 %s", got, p.Neutral["25"])
	}
}

func TestResolve_DataColors(t *testing.T) {
	p := testPalettes(t)
	got, _ := Resolve("@fg-secondary", ModeLight, p)
	if got != "#12239e" {
		t.Errorf("@fg-secondary = %s, want #12239e", got)
	}
}

func TestResolve_UnregisteredIsSoftMiss(t *testing.T) {
	if got, ok := Resolve("@does-not-exist", ModeLight, Palettes{}); ok || got != "" {
		t.Errorf("expected soft miss, got %q, %v", got, ok)
	}
}

func TestRegistry_TotalWithoutPalettes(t *testing.T) {
	for _, opt := range Options() {
		for _, mode := range []Mode{ModeLight, ModeDark} {
			got, ok := Resolve(opt.Token, mode, Palettes{})
			if !ok {
				t.Fatalf("%s not resolvable", opt.Token)
			}
			if !color.IsHex(got) {
				t.Errorf("%s (%s) fallback %q is not a hex color", opt.Token, mode, got)
			}
		}
	}
}

func TestRegistry_PartialPalette(t *testing.T) {
	partial := Palettes{Neutral: palette.Palette{"900": "#111111"}}
	got, _ := Resolve("@text-primary", ModeLight, partial)
	if got != "#111111" {
		t.Errorf("expected shade from partial palette, got %s", got)
	}
	got, _ = Resolve("@text-secondary", ModeLight, partial)
	if got != "#404040" {
		t.Errorf("expected hardcoded fallback for missing shade, got %s", got)
	}
}

func TestOptions(t *testing.T) {
	opts := Options()
	if len(opts) != len(registry) {
		t.Fatalf("expected %d options, got %d", len(registry), len(opts))
	}

	seen := map[Category]bool{}
	last := -1
	for _, o := range opts {
		if o.Description == "" {
			t.Errorf("%s has no description", o.Token)
		}
		idx, ok := categoryOrder[o.Category]
		if !ok {
			t.Errorf("%s has unknown category %q", o.Token, o.Category)
		}
		if idx < last {
			t.Errorf("options not grouped by category at %s", o.Token)
		}
		last = idx
		seen[o.Category] = true
	}
	if len(seen) != len(categoryOrder) {
		t.Errorf("expected all %d categories to have tokens, got %d", len(categoryOrder), len(seen))
	}
}
