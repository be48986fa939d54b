package web

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/emiliopalmerini/themestudio/internal/metrics"
	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/ports"
	"github.com/emiliopalmerini/themestudio/internal/shared/middleware"
	"github.com/emiliopalmerini/themestudio/internal/theme"
	"github.com/emiliopalmerini/themestudio/internal/themedoc"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

type paletteRequest struct {
	HexColor string `json:"hexColor"`
}

func (s *Server) handleAPIGenerateBrandPalette(w http.ResponseWriter, r *http.Request) {
	var req paletteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	p, err := palette.GenerateBrand(req.HexColor)
	if err != nil {
		writeError(w, statusFor(err), "Invalid hex color format")
		return
	}
	s.recordPalette(r, palette.KindBrand, req.HexColor, time.Since(start))

	writeJSON(w, http.StatusOK, map[string]any{"palette": p})
}

func (s *Server) handleAPIGenerateNeutralPalette(w http.ResponseWriter, r *http.Request) {
	var req paletteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	named, err := palette.GenerateNeutral(req.HexColor)
	if err != nil {
		writeError(w, statusFor(err), "Invalid hex color format")
		return
	}
	s.recordPalette(r, palette.KindNeutral, req.HexColor, time.Since(start))

	writeJSON(w, http.StatusOK, named)
}

func (s *Server) recordPalette(r *http.Request, kind palette.Kind, seed string, d time.Duration) {
	metrics.PalettesGeneratedTotal.WithLabelValues(string(kind)).Inc()
	if s.metrics == nil {
		return
	}
	err := s.metrics.ExportPaletteMetrics(r.Context(), &ports.PaletteMetrics{Kind: string(kind), Seed: seed, Duration: d})
	if err != nil {
		log.Printf("Warning: failed to export palette metrics: %v", err)
	}
}

func (s *Server) handleAPITokens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tokens": tokens.Options()})
}

type resolveRequest struct {
	Document       any            `json:"document"`
	Mode           string         `json:"mode"`
	NeutralHex     string         `json:"neutralHex"`
	NeutralPalette map[string]any `json:"neutralPalette"`
	DataColors     []string       `json:"dataColors"`
}

// handleAPIResolve resolves tokens in an arbitrary document. Without
// dataColors, ThemeDataColor expressions are left as they are.
func (s *Server) handleAPIResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := tokens.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var neutral palette.Palette
	switch {
	case req.NeutralPalette != nil:
		if !palette.Validate(req.NeutralPalette) {
			writeError(w, http.StatusBadRequest, "Invalid neutral palette")
			return
		}
		neutral = palette.FromMap(req.NeutralPalette)
	case req.NeutralHex != "":
		named, err := palette.GenerateNeutral(req.NeutralHex)
		if err != nil {
			writeError(w, statusFor(err), "Invalid hex color format")
			return
		}
		neutral = named.Palette
	}

	cfg, err := s.configs.Init(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resolver := &tokens.Resolver{
		Mode:     mode,
		Palettes: tokens.Palettes{Neutral: neutral, DataColors: req.DataColors},
		Fonts:    cfg.Fonts,
		Values:   cfg.Values,
	}
	var count int
	resolve := func(token string) any {
		count++
		return resolver.Resolve(token)
	}

	doc := themedoc.Replace(req.Document, resolve, req.DataColors)
	metrics.TokensResolved.WithLabelValues("resolve").Observe(float64(count))

	writeJSON(w, http.StatusOK, map[string]any{"document": doc})
}

type themeRequest struct {
	Name           string         `json:"name"`
	Mode           string         `json:"mode"`
	NeutralHex     string         `json:"neutralHex"`
	NeutralPalette map[string]any `json:"neutralPalette"`
	DataColors     []string       `json:"dataColors"`
	BrandHex       string         `json:"brandHex"`
}

// handleAPIThemes generates a full theme. A brandHex without explicit
// dataColors derives the data colors from the brand ramp.
func (s *Server) handleAPIThemes(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := tokens.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var res *theme.Result
	if req.BrandHex != "" && len(req.DataColors) == 0 && req.NeutralPalette == nil {
		res, err = s.simple.Generate(r.Context(), theme.SimpleRequest{
			Name:       req.Name,
			Mode:       mode,
			BrandHex:   req.BrandHex,
			NeutralHex: req.NeutralHex,
		})
	} else {
		tr := theme.Request{
			Name:       req.Name,
			Mode:       mode,
			NeutralHex: req.NeutralHex,
			DataColors: req.DataColors,
		}
		if req.NeutralPalette != nil {
			if !palette.Validate(req.NeutralPalette) {
				writeError(w, http.StatusBadRequest, "Invalid neutral palette")
				return
			}
			tr.NeutralPalette = palette.FromMap(req.NeutralPalette)
		}
		res, err = s.generator.Generate(r.Context(), tr)
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("theme generation failed (id=%s): %v", middleware.GetRequestID(r), err)
		}
		writeError(w, status, err.Error())
		return
	}

	var total int64
	for _, n := range res.TokensByTier {
		total += n
	}
	metrics.ThemesGeneratedTotal.WithLabelValues(string(res.Mode)).Inc()
	metrics.TokensResolved.WithLabelValues("themes").Observe(float64(total))

	writeJSON(w, http.StatusOK, res.Document)
}

func (s *Server) handleAPIReloadConfig(w http.ResponseWriter, r *http.Request) {
	if _, err := s.configs.Reload(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("reloading config: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}
