package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/freelance-manager/internal/httpx"
	"github.com/diewo77/freelance-manager/internal/render"
	"github.com/diewo77/freelance-manager/internal/services"
)

type ContratHandler struct {
	Svc      *services.ContratService
	Clients  *services.ClientService
	Renderer *render.Renderer
}

func NewContratHandler(svc *services.ContratService, clients *services.ClientService, r *render.Renderer) *ContratHandler {
	return &ContratHandler{Svc: svc, Clients: clients, Renderer: r}
}

// List: GET /contrats?client_id=&type=
func (h *ContratHandler) List(w http.ResponseWriter, r *http.Request) {
	var clientID uint
	if v, ok := idParamNamed(r, "client_id"); ok {
		clientID = v
	}
	list, err := h.Svc.List(clientID, r.URL.Query().Get("type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": list, "total": len(list)})
}

// Generate: POST /contrats – creates the contrat and renders its .docx in one go.
// A rendering failure leaves the contrat persisted; the docx can be
// regenerated later from the same entity.
func (h *ContratHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var in services.ContratInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	ct, err := h.Svc.Create(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	client, err := h.Clients.Get(ct.ClientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	path, renderErr := h.Renderer.Contrat(ct, client)
	if renderErr != nil {
		httpx.JSON(w, http.StatusCreated, map[string]any{"contrat": ct, "render_error": "docx_generation_failed"})
		return
	}
	if err := h.Svc.SetFichierPath(ct.ID, path); err != nil {
		writeServiceError(w, err)
		return
	}
	ct.FichierPath = path
	httpx.JSON(w, http.StatusCreated, ct)
}

// Delete: POST /contrats/delete?id=...
func (h *ContratHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
