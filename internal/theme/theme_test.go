package theme

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/ports"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

type fakeLoader struct {
	cfg   *Configs
	err   error
	calls atomic.Int32
}

func (f *fakeLoader) Load(ctx context.Context) (*ports.Configs, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.cfg, nil
}

type recordingExporter struct {
	mu       sync.Mutex
	palettes []*ports.PaletteMetrics
	themes   []*ports.ThemeMetrics
}

func (r *recordingExporter) ExportPaletteMetrics(ctx context.Context, m *ports.PaletteMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.palettes = append(r.palettes, m)
	return nil
}

func (r *recordingExporter) ExportThemeMetrics(ctx context.Context, m *ports.ThemeMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes = append(r.themes, m)
	return nil
}

func (r *recordingExporter) Close(ctx context.Context) error { return nil }

func testConfigs() *Configs {
	return &Configs{
		BaseTheme: map[string]any{
			"background": "@bg-primary",
			"textClasses": map[string]any{
				"title": map[string]any{"fontFace": "@font-title", "fontSize": "@title-size"},
			},
		},
		VisualStyles: map[string]any{
			"*": map[string]any{"*": map[string]any{
				"title":  []any{map[string]any{"fontColor": map[string]any{"solid": map[string]any{"color": "@text-title"}}}},
				"labels": []any{map[string]any{"color": map[string]any{"expr": map[string]any{"ThemeDataColor": map[string]any{"ColorId": 1.0}}}}},
				"accent": "@data-color-1",
				"other":  "@mystery",
			}},
		},
		Fonts:       map[string]string{"font-title": "Georgia"},
		Values:      map[string]any{"title-size": 14.0},
		DataColors:  []string{"#118DFF", "#12239e"},
		NeutralSeed: "#808080",
	}
}

func newTestGenerator(cfg *Configs) (*Generator, *recordingExporter, *fakeLoader) {
	loader := &fakeLoader{cfg: cfg}
	rec := &recordingExporter{}
	return NewGenerator(NewConfigCache(loader), rec), rec, loader
}

func TestConfigCache(t *testing.T) {
	loader := &fakeLoader{cfg: testConfigs()}
	cache := NewConfigCache(loader)

	if _, ok := cache.Get(); ok {
		t.Fatal("Get() before Init should report false")
	}

	for i := 0; i < 3; i++ {
		if _, err := cache.Init(context.Background()); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
	}
	if n := loader.calls.Load(); n != 1 {
		t.Errorf("loader called %d times, want 1", n)
	}
	if cfg, ok := cache.Get(); !ok || cfg.NeutralSeed != "#808080" {
		t.Errorf("Get() = %v, %v", cfg, ok)
	}

	cache.Clear()
	if _, ok := cache.Get(); ok {
		t.Error("Get() after Clear should report false")
	}
	if _, err := cache.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if n := loader.calls.Load(); n != 2 {
		t.Errorf("loader called %d times after Clear, want 2", n)
	}
}

func TestConfigCache_ErrorNotCached(t *testing.T) {
	loader := &fakeLoader{err: errors.New("boom")}
	cache := NewConfigCache(loader)

	if _, err := cache.Init(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	loader.err = nil
	loader.cfg = testConfigs()
	if _, err := cache.Init(context.Background()); err != nil {
		t.Fatalf("Init() after recovery error = %v", err)
	}
}

func TestConfigCache_ReloadKeepsPreviousOnError(t *testing.T) {
	loader := &fakeLoader{cfg: testConfigs()}
	cache := NewConfigCache(loader)
	if _, err := cache.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	loader.err = errors.New("boom")
	if _, err := cache.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}
	if cfg, ok := cache.Get(); !ok || cfg.NeutralSeed != "#808080" {
		t.Errorf("Get() after failed reload = %v, %v", cfg, ok)
	}

	loader.err = nil
	loader.cfg = &Configs{NeutralSeed: "#111111"}
	if _, err := cache.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if cfg, _ := cache.Get(); cfg.NeutralSeed != "#111111" {
		t.Errorf("NeutralSeed = %s, want #111111", cfg.NeutralSeed)
	}
}

func TestConfigCache_Concurrent(t *testing.T) {
	loader := &fakeLoader{cfg: testConfigs()}
	cache := NewConfigCache(loader)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cache.Init(context.Background())
		}()
	}
	wg.Wait()

	if n := loader.calls.Load(); n != 1 {
		t.Errorf("loader called %d times, want 1", n)
	}
}

func TestGenerator_Generate(t *testing.T) {
	g, rec, _ := newTestGenerator(testConfigs())

	res, err := g.Generate(context.Background(), Request{Name: "Corporate", Mode: tokens.ModeLight})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	doc := res.Document

	if doc["name"] != "Corporate" {
		t.Errorf("name = %v", doc["name"])
	}
	if doc["background"] != "#ffffff" {
		t.Errorf("background = %v, want #ffffff", doc["background"])
	}
	title := doc["textClasses"].(map[string]any)["title"].(map[string]any)
	if title["fontFace"] != "Georgia" || title["fontSize"] != 14.0 {
		t.Errorf("title = %v", title)
	}

	dc := doc["dataColors"].([]string)
	if len(dc) != 2 || dc[0] != "#118dff" {
		t.Errorf("dataColors = %v, want normalized config colors", dc)
	}

	styles := doc["visualStyles"].(map[string]any)["*"].(map[string]any)["*"].(map[string]any)
	if styles["accent"] != "#118dff" {
		t.Errorf("accent = %v", styles["accent"])
	}
	labels := styles["labels"].([]any)[0].(map[string]any)
	if labels["color"] != "#12239e" {
		t.Errorf("labels.color = %v, want #12239e", labels["color"])
	}
	fontColor := styles["title"].([]any)[0].(map[string]any)["fontColor"].(map[string]any)["solid"].(map[string]any)["color"]
	if !color.IsHex(fontColor.(string)) {
		t.Errorf("title font color = %v", fontColor)
	}
	if styles["other"] != res.Neutral.Palette["600"] {
		t.Errorf("unknown token = %v, want neutral 600 fallback", styles["other"])
	}

	if res.TokensByTier[tokens.TierFont] != 1 || res.TokensByTier[tokens.TierValue] != 1 ||
		res.TokensByTier[tokens.TierDataColor] != 1 || res.TokensByTier[tokens.TierFallback] != 1 {
		t.Errorf("TokensByTier = %v", res.TokensByTier)
	}

	if len(rec.themes) != 1 || rec.themes[0].ThemeName != "Corporate" || rec.themes[0].Mode != "light" {
		t.Errorf("theme metrics = %+v", rec.themes)
	}
	if len(rec.palettes) != 1 || rec.palettes[0].Kind != "neutral" {
		t.Errorf("palette metrics = %+v", rec.palettes)
	}
}

func TestGenerator_DoesNotMutateConfigs(t *testing.T) {
	cfg := testConfigs()
	g, _, _ := newTestGenerator(cfg)

	if _, err := g.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.BaseTheme["background"] != "@bg-primary" {
		t.Errorf("base theme mutated: %v", cfg.BaseTheme["background"])
	}
	if _, ok := cfg.BaseTheme["name"]; ok {
		t.Error("name leaked into base theme")
	}
}

func TestGenerator_Defaults(t *testing.T) {
	g, _, _ := newTestGenerator(testConfigs())

	res, err := g.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Document["name"] != DefaultName {
		t.Errorf("name = %v", res.Document["name"])
	}
	if res.Mode != tokens.ModeLight {
		t.Errorf("mode = %v", res.Mode)
	}
	want, _ := palette.GenerateNeutral("#808080")
	if res.Neutral.Palette["500"] != want.Palette["500"] {
		t.Errorf("neutral not generated from config seed")
	}
}

func TestGenerator_DarkMode(t *testing.T) {
	g, _, _ := newTestGenerator(testConfigs())

	res, err := g.Generate(context.Background(), Request{Mode: tokens.ModeDark, NeutralHex: "#336699"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Document["background"] != res.Neutral.Palette["950"] {
		t.Errorf("dark background = %v, want neutral 950 %v", res.Document["background"], res.Neutral.Palette["950"])
	}
}

func TestGenerator_ImportedPalette(t *testing.T) {
	g, rec, _ := newTestGenerator(testConfigs())
	imported, _ := palette.GenerateBrand("#2568e8")

	res, err := g.Generate(context.Background(), Request{NeutralPalette: imported})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Neutral.Palette["500"] != imported["500"] {
		t.Error("imported palette not used")
	}
	if len(rec.palettes) != 0 {
		t.Errorf("imported palette should not record generation metrics, got %d", len(rec.palettes))
	}
}

func TestGenerator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"bad neutral", Request{NeutralHex: "nope"}, color.ErrInvalidColorFormat},
		{"bad data color", Request{DataColors: []string{"#118dff", "#12"}}, color.ErrInvalidColorFormat},
		{"incomplete palette", Request{NeutralPalette: palette.Palette{"500": "#808080"}}, ErrInvalidPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec, _ := newTestGenerator(testConfigs())
			_, err := g.Generate(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
			if len(rec.themes) != 0 {
				t.Error("failed generation must not export theme metrics")
			}
		})
	}
}

func TestGenerator_LoaderError(t *testing.T) {
	loader := &fakeLoader{err: errors.New("disk gone")}
	g := NewGenerator(NewConfigCache(loader), nil)

	if _, err := g.Generate(context.Background(), Request{}); err == nil {
		t.Error("expected loader error")
	}
}

func TestSimpleGenerator(t *testing.T) {
	g, _, _ := newTestGenerator(testConfigs())
	s := NewSimpleGenerator(g)

	res, err := s.Generate(context.Background(), SimpleRequest{Name: "Brand", BrandHex: "#2568e8"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	brand, _ := palette.GenerateBrand("#2568e8")
	if len(res.DataColors) != len(brandDataShades) {
		t.Fatalf("len(DataColors) = %d", len(res.DataColors))
	}
	if res.DataColors[0] != brand["500"] || res.DataColors[1] != brand["700"] {
		t.Errorf("DataColors = %v, want brand 500 then 700", res.DataColors)
	}

	if _, err := s.Generate(context.Background(), SimpleRequest{BrandHex: "red"}); !errors.Is(err, color.ErrInvalidColorFormat) {
		t.Errorf("invalid brand error = %v", err)
	}
}

func TestPreview(t *testing.T) {
	neutral, _ := palette.GenerateNeutral("#808080")
	p := tokens.Palettes{Neutral: neutral.Palette}

	values := Preview(tokens.ModeLight, p)
	if len(values) != len(tokens.Options()) {
		t.Fatalf("len(Preview) = %d, want %d", len(values), len(tokens.Options()))
	}
	for _, v := range values {
		if !color.IsHex(v.Value) {
			t.Errorf("%s resolved to %q", v.Token, v.Value)
		}
	}

	m := PreviewMap(tokens.ModeDark, p)
	if m["@bg-primary"] != neutral.Palette["950"] {
		t.Errorf("dark @bg-primary = %q", m["@bg-primary"])
	}
}

func TestBuildPreview(t *testing.T) {
	data, err := BuildPreview(tokens.ModeLight, "#808080", "#e66c37")
	if err != nil {
		t.Fatalf("BuildPreview() error = %v", err)
	}
	if data.Neutral.Name != "Gray" {
		t.Errorf("neutral name = %q", data.Neutral.Name)
	}
	if len(data.Brand) != len(palette.Shades) {
		t.Errorf("brand palette size = %d", len(data.Brand))
	}

	if _, err := BuildPreview(tokens.ModeLight, "#808080", "bad"); err == nil {
		t.Error("expected error for bad brand color")
	}
	noBrand, err := BuildPreview(tokens.ModeLight, "#808080", "")
	if err != nil || noBrand.Brand != nil {
		t.Errorf("BuildPreview() without brand = %v, %v", noBrand, err)
	}
}
