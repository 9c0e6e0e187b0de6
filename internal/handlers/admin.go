package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"kabakeh-backend/internal/auth"
	"kabakeh-backend/internal/config"
)

type AdminHandler struct {
	cfg *config.Config
}

func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password"`
}

// --- POST /admin/login ---

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	// A malformed body is treated as an empty password, which fails the
	// comparison below rather than producing a separate error.
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if h.cfg.AdminPassword == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "ADMIN_PASSWORD not configured"})
		return
	}

	// Constant-time compare — this is trust-boundary code.
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Wrong password"})
		return
	}

	if h.cfg.AdminSecret == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "ADMIN_SECRET not configured"})
		return
	}

	token := auth.IssueToken(h.cfg.AdminSecret)
	http.SetCookie(w, auth.SessionCookie(token))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
