package handlers

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/export"
	"github.com/diewo77/freelance-manager/internal/httpx"
)

type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler { return &ExportHandler{DB: db} }

func (h *ExportHandler) load(annee int) (export.Workbook, error) {
	var wb export.Workbook
	if err := h.DB.Order("nom").Find(&wb.Clients).Error; err != nil {
		return wb, err
	}
	dq := h.DB.Order("numero")
	fq := h.DB.Order("numero")
	cq := h.DB.Order("numero")
	if annee != 0 {
		start := time.Date(annee, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		dq = dq.Where("date_creation >= ? AND date_creation < ?", start, end)
		fq = fq.Where("date_creation >= ? AND date_creation < ?", start, end)
		cq = cq.Where("date_creation >= ? AND date_creation < ?", start, end)
	}
	if err := dq.Find(&wb.Devis).Error; err != nil {
		return wb, err
	}
	if err := fq.Find(&wb.Factures).Error; err != nil {
		return wb, err
	}
	if err := cq.Find(&wb.Contrats).Error; err != nil {
		return wb, err
	}
	return wb, nil
}

// CSV: GET /export/csv?type=clients|devis|factures|contrats&annee=...
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	wb, err := h.load(anneeParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	docType := r.URL.Query().Get("type")
	name := docType + "_" + time.Now().Format("20060102") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	switch docType {
	case "clients":
		err = export.ClientsCSV(w, wb.Clients)
	case "devis":
		err = export.DevisCSV(w, wb.Devis)
	case "factures":
		err = export.FacturesCSV(w, wb.Factures)
	case "contrats":
		err = export.ContratsCSV(w, wb.Contrats)
	default:
		httpx.JSONError(w, http.StatusBadRequest, "invalid_type", map[string]string{
			"type": "clients|devis|factures|contrats",
		})
		return
	}
	if err != nil {
		// headers already sent; nothing left to do but log upstream
		_ = err
	}
}

// Excel: GET /export/excel?annee=...
func (h *ExportHandler) Excel(w http.ResponseWriter, r *http.Request) {
	wb, err := h.load(anneeParam(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	name := "export_" + time.Now().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := export.Excel(w, wb); err != nil {
		_ = err
	}
}
