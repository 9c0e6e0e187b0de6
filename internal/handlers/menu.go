package handlers

import (
	"net/http"

	"kabakeh-backend/internal/config"
	"kabakeh-backend/internal/menu"
)

type MenuHandler struct {
	cfg *config.Config
}

func NewMenuHandler(cfg *config.Config) *MenuHandler {
	return &MenuHandler{cfg: cfg}
}

// --- GET /menu ---

func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	lang := menu.ResolveLang(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lang":       lang,
		"rtl":        menu.IsRTL(lang),
		"categories": menu.Localize(lang, h.cfg.MenuImageBaseURL),
	})
}

// --- GET /settings ---
// Public client settings: the review redirect target and the image base, so
// a thin client carries no baked-in configuration.

func (h *MenuHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"review_url":     h.cfg.GoogleReviewURL,
		"image_base_url": h.cfg.MenuImageBaseURL,
	})
}
