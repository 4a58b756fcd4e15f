package handlers

import (
	"net/http"

	"github.com/diewo77/freelance-manager/internal/httpx"
	"github.com/diewo77/freelance-manager/internal/services"
)

type StatsHandler struct {
	Svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{Svc: svc}
}

// Get: GET /stats?annee=...
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.Svc.Compute(anneeParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, st)
}
