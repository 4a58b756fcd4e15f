package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/diewo77/freelance-manager/internal/httpx"
	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/render"
	"github.com/diewo77/freelance-manager/internal/services"
)

type FactureHandler struct {
	Svc      *services.FactureService
	Clients  *services.ClientService
	Renderer *render.Renderer
}

func NewFactureHandler(svc *services.FactureService, clients *services.ClientService, r *render.Renderer) *FactureHandler {
	return &FactureHandler{Svc: svc, Clients: clients, Renderer: r}
}

// factureView decorates a facture with its effective (overdue-aware) status.
type factureView struct {
	models.Facture
	StatutEffectif models.FactureStatut `json:"statut_effectif"`
}

func viewOf(f models.Facture, now time.Time) factureView {
	return factureView{Facture: f, StatutEffectif: f.EffectiveStatut(now)}
}

// List: GET /factures?client_id=&statut=&annee=
func (h *FactureHandler) List(w http.ResponseWriter, r *http.Request) {
	var clientID uint
	if v, ok := idParamNamed(r, "client_id"); ok {
		clientID = v
	}
	statut := models.FactureStatut(r.URL.Query().Get("statut"))
	list, err := h.Svc.List(clientID, statut, anneeParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	now := time.Now()
	views := make([]factureView, 0, len(list))
	for _, f := range list {
		views = append(views, viewOf(f, now))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": views, "total": len(views)})
}

// Create: POST /factures
func (h *FactureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.FactureInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	f, err := h.Svc.Create(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, f)
}

// Statut: POST /factures/statut?id=...  body {"statut":"paid","date_paiement":"2024-02-15"}
// statut "unpaid" on a paid facture is the explicit payment reversal.
func (h *FactureHandler) Statut(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var body struct {
		Statut       models.FactureStatut `json:"statut"`
		DatePaiement string               `json:"date_paiement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	switch body.Statut {
	case models.FacturePaid:
		datePaiement := time.Now()
		if body.DatePaiement != "" {
			t, err := time.Parse("2006-01-02", body.DatePaiement)
			if err != nil {
				httpx.JSONError(w, http.StatusBadRequest, "invalid_date", nil)
				return
			}
			datePaiement = t
		}
		f, err := h.Svc.MarkPaid(id, datePaiement)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, f)
	case models.FactureUnpaid:
		f, err := h.Svc.RevertPayment(id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.JSON(w, http.StatusOK, f)
	default:
		httpx.JSONError(w, http.StatusBadRequest, "invalid_statut", nil)
	}
}

// PDF: GET /factures/pdf?id=...
func (h *FactureHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	f, err := h.Svc.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	c, err := h.Clients.Get(f.ClientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	path, err := h.Renderer.Facture(f, c)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.FactureFilename(f.Numero)+`"`)
	http.ServeFile(w, r, path)
}

// Delete: POST /factures/delete?id=...
func (h *FactureHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
