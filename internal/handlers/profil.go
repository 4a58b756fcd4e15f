package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/httpx"
)

// ProfilHandler exposes the freelancer profile: read-only at runtime except
// through the explicit save operation, which rewrites the whole file.
type ProfilHandler struct {
	mu      sync.Mutex
	path    string
	profile appconfig.Profile
	// onSave lets the app propagate the new profile to renderers etc.
	onSave func(appconfig.Profile)
}

func NewProfilHandler(path string, profile appconfig.Profile, onSave func(appconfig.Profile)) *ProfilHandler {
	return &ProfilHandler{path: path, profile: profile, onSave: onSave}
}

// Get: GET /config
func (h *ProfilHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	p := h.profile
	h.mu.Unlock()
	httpx.JSON(w, http.StatusOK, p)
}

// Save: POST /config – full replacement, persisted before acknowledging.
func (h *ProfilHandler) Save(w http.ResponseWriter, r *http.Request) {
	var p appconfig.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if p.SeuilCA <= 0 {
		p.SeuilCA = appconfig.DefaultSeuilCA
	}
	if p.DelaiPaiement <= 0 {
		p.DelaiPaiement = appconfig.DefaultDelaiPaiement
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := appconfig.SaveProfile(h.path, p); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	h.profile = p
	if h.onSave != nil {
		h.onSave(p)
	}
	httpx.JSON(w, http.StatusOK, p)
}
