package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/freelance-manager/internal/httpx"
	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/render"
	"github.com/diewo77/freelance-manager/internal/services"
)

type DevisHandler struct {
	Svc      *services.DevisService
	Clients  *services.ClientService
	Factures *services.FactureService
	Renderer *render.Renderer
}

func NewDevisHandler(svc *services.DevisService, clients *services.ClientService, factures *services.FactureService, r *render.Renderer) *DevisHandler {
	return &DevisHandler{Svc: svc, Clients: clients, Factures: factures, Renderer: r}
}

// List: GET /devis?client_id=&statut=
func (h *DevisHandler) List(w http.ResponseWriter, r *http.Request) {
	var clientID uint
	if v, ok := idParamNamed(r, "client_id"); ok {
		clientID = v
	}
	statut := models.DevisStatut(r.URL.Query().Get("statut"))
	list, err := h.Svc.List(clientID, statut)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": list, "total": len(list)})
}

// Create: POST /devis
func (h *DevisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.DevisInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	d, err := h.Svc.Create(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, d)
}

// Statut: POST /devis/statut?id=...  body {"statut":"sent"}
func (h *DevisHandler) Statut(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var body struct {
		Statut models.DevisStatut `json:"statut"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	d, err := h.Svc.UpdateStatut(id, body.Statut)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, d)
}

// Convert: POST /devis/convert?id=...  body {"jours_effectifs": 5}
func (h *DevisHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var body struct {
		JoursEffectifs float64               `json:"jours_effectifs"`
		Extra          services.FactureInput `json:"facture"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	f, err := h.Factures.CreateFromDevis(id, body.JoursEffectifs, body.Extra)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, f)
}

// PDF: GET /devis/pdf?id=...
// The devis is persisted regardless of rendering success; regeneration is
// idempotent and always serves the document for the stored entity.
func (h *DevisHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	d, err := h.Svc.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	c, err := h.Clients.Get(d.ClientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	path, err := h.Renderer.Devis(d, c)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.DevisFilename(d.Numero)+`"`)
	http.ServeFile(w, r, path)
}

// Delete: POST /devis/delete?id=...
func (h *DevisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
