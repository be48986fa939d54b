package web

import (
	"net/http"

	"github.com/emiliopalmerini/themestudio/internal/theme"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
	"github.com/emiliopalmerini/themestudio/internal/web/templates"
)

const defaultPreviewNeutral = "#737373"

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode, err := tokens.ParseMode(q.Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	neutral := q.Get("neutral")
	if neutral == "" {
		neutral = defaultPreviewNeutral
		if cfg, err := s.configs.Init(r.Context()); err == nil && cfg.NeutralSeed != "" {
			neutral = cfg.NeutralSeed
		}
	}

	data, err := theme.BuildPreview(mode, neutral, q.Get("brand"))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	view := buildPreviewView(data)
	view.NeutralSeed = neutral
	view.BrandSeed = q.Get("brand")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Preview(view).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
