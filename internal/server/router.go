package server

import (
	"net/http"

	"gorm.io/gorm"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/handlers"
	"github.com/diewo77/freelance-manager/internal/httpx"
	"github.com/diewo77/freelance-manager/internal/render"
	"github.com/diewo77/freelance-manager/internal/services"
)

// New constructs the root http.Handler with all routes applied.
func New(db *gorm.DB, cfg appconfig.Config, profile appconfig.Profile) http.Handler {
	mux := http.NewServeMux()

	numbering := services.NewNumberingService()
	clientSvc := services.NewClientService(db)
	devisSvc := services.NewDevisService(db, numbering)
	factureSvc := services.NewFactureService(db, numbering, profile.DelaiPaiement)
	contratSvc := services.NewContratService(db, numbering)
	statsSvc := services.NewStatsService(db, profile.SeuilCA)
	renderer := render.New(cfg.OutputDir, profile)

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Client endpoints
	ch := handlers.NewClientHandler(clientSvc)
	mux.HandleFunc("/clients", listCreate(ch.List, ch.Create))
	mux.HandleFunc("/clients/show", ch.Get)
	mux.HandleFunc("/clients/update", ch.Update)
	mux.HandleFunc("/clients/delete", ch.Delete)

	// Devis endpoints
	dh := handlers.NewDevisHandler(devisSvc, clientSvc, factureSvc, renderer)
	mux.HandleFunc("/devis", listCreate(dh.List, dh.Create))
	mux.HandleFunc("/devis/statut", dh.Statut)
	mux.HandleFunc("/devis/convert", dh.Convert)
	mux.HandleFunc("/devis/pdf", dh.PDF)
	mux.HandleFunc("/devis/delete", dh.Delete)

	// Facture endpoints
	fh := handlers.NewFactureHandler(factureSvc, clientSvc, renderer)
	mux.HandleFunc("/factures", listCreate(fh.List, fh.Create))
	mux.HandleFunc("/factures/statut", fh.Statut)
	mux.HandleFunc("/factures/pdf", fh.PDF)
	mux.HandleFunc("/factures/delete", fh.Delete)

	// Contrat endpoints
	cth := handlers.NewContratHandler(contratSvc, clientSvc, renderer)
	mux.HandleFunc("/contrats", listCreate(cth.List, cth.Generate))
	mux.HandleFunc("/contrats/delete", cth.Delete)

	// Stats & exports
	sh := handlers.NewStatsHandler(statsSvc)
	mux.HandleFunc("/stats", sh.Get)
	eh := handlers.NewExportHandler(db)
	mux.HandleFunc("/export/csv", eh.CSV)
	mux.HandleFunc("/export/excel", eh.Excel)

	// Freelancer profile (config store)
	ph := handlers.NewProfilHandler(cfg.ConfigPath, profile, func(p appconfig.Profile) {
		renderer.Profile = p
		factureSvc.DelaiPaiement = p.DelaiPaiement
		statsSvc.SeuilCA = p.SeuilCA
	})
	mux.HandleFunc("/config", listCreate(ph.Get, ph.Save))

	return mux
}

// listCreate dispatches GET to list and POST to create, the method switch
// used on every collection route.
func listCreate(get, post http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			get(w, r)
		case http.MethodPost:
			post(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	}
}
