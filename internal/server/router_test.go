package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/models"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}, &models.Devis{}, &models.Facture{}, &models.Contrat{}, &models.Compteur{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := appconfig.Config{
		OutputDir:  t.TempDir(),
		ConfigPath: t.TempDir() + "/config.yaml",
	}
	profile := appconfig.Profile{
		Nom: "Jean Dupont", Statut: "micro-entreprise",
		SeuilCA: 77700, DelaiPaiement: 30,
	}
	return New(db, cfg, profile)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return m
}

func TestHealth(t *testing.T) {
	h := setupRouter(t)
	if w := do(t, h, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/healthz", ""); w.Code != http.StatusOK {
		t.Fatalf("healthz: %d", w.Code)
	}
}

// TestQuoteToInvoiceOverHTTP drives the nominal lifecycle through the router:
// create client, quote it, send, accept, convert, pay, then check the stats.
func TestQuoteToInvoiceOverHTTP(t *testing.T) {
	h := setupRouter(t)
	annee := time.Now().Year()

	w := do(t, h, http.MethodPost, "/clients", `{"nom":"ACME Corp","siret":"12345678900011","ville":"Paris"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: %d body=%s", w.Code, w.Body.String())
	}
	clientID := int(decode(t, w)["id"].(float64))

	w = do(t, h, http.MethodPost, "/devis",
		fmt.Sprintf(`{"client_id":%d,"description":"Développement API","tjm":300,"jours":5}`, clientID))
	if w.Code != http.StatusCreated {
		t.Fatalf("create devis: %d body=%s", w.Code, w.Body.String())
	}
	devis := decode(t, w)
	devisID := int(devis["id"].(float64))
	if want := fmt.Sprintf("DEVIS-%d-001", annee); devis["numero"] != want {
		t.Fatalf("numero = %v, want %s", devis["numero"], want)
	}
	if devis["total_ht"].(float64) != 1500 {
		t.Fatalf("total = %v, want 1500", devis["total_ht"])
	}

	// draft -> accepted direct: 409.
	w = do(t, h, http.MethodPost, fmt.Sprintf("/devis/statut?id=%d", devisID), `{"statut":"accepted"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("illegal transition: %d body=%s", w.Code, w.Body.String())
	}

	for _, statut := range []string{"sent", "accepted"} {
		w = do(t, h, http.MethodPost, fmt.Sprintf("/devis/statut?id=%d", devisID), `{"statut":"`+statut+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("statut %s: %d body=%s", statut, w.Code, w.Body.String())
		}
	}

	w = do(t, h, http.MethodPost, fmt.Sprintf("/devis/convert?id=%d", devisID), `{"jours_effectifs":5}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("convert: %d body=%s", w.Code, w.Body.String())
	}
	facture := decode(t, w)
	factureID := int(facture["id"].(float64))
	if want := fmt.Sprintf("FACT-%d-001", annee); facture["numero"] != want {
		t.Fatalf("facture numero = %v, want %s", facture["numero"], want)
	}

	// Un devis, une facture.
	w = do(t, h, http.MethodPost, fmt.Sprintf("/devis/convert?id=%d", devisID), `{"jours_effectifs":5}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("second conversion: %d", w.Code)
	}

	w = do(t, h, http.MethodPost, fmt.Sprintf("/factures/statut?id=%d", factureID), `{"statut":"paid"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("mark paid: %d body=%s", w.Code, w.Body.String())
	}

	w = do(t, h, http.MethodGet, fmt.Sprintf("/stats?annee=%d", annee), "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats: %d", w.Code)
	}
	stats := decode(t, w)
	if stats["total_revenue"].(float64) != 1500 {
		t.Fatalf("revenue = %v, want 1500", stats["total_revenue"])
	}
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	h := setupRouter(t)

	w := do(t, h, http.MethodPost, "/clients", `{"nom":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty nom: %d", w.Code)
	}
	w = do(t, h, http.MethodGet, "/clients/show?id=999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown client: %d", w.Code)
	}
	w = do(t, h, http.MethodDelete, "/clients", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("method: %d", w.Code)
	}
}

func TestClientDeleteConflictOverHTTP(t *testing.T) {
	h := setupRouter(t)

	w := do(t, h, http.MethodPost, "/clients", `{"nom":"ACME"}`)
	clientID := int(decode(t, w)["id"].(float64))
	w = do(t, h, http.MethodPost, "/devis", fmt.Sprintf(`{"client_id":%d,"tjm":300,"jours":1}`, clientID))
	if w.Code != http.StatusCreated {
		t.Fatalf("devis: %d", w.Code)
	}

	w = do(t, h, http.MethodPost, fmt.Sprintf("/clients/delete?id=%d", clientID), "")
	if w.Code != http.StatusConflict {
		t.Fatalf("delete with documents: %d body=%s", w.Code, w.Body.String())
	}
	w = do(t, h, http.MethodPost, fmt.Sprintf("/clients/delete?id=%d&cascade=1", clientID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("cascade delete: %d body=%s", w.Code, w.Body.String())
	}
}

func TestExportEndpoints(t *testing.T) {
	h := setupRouter(t)

	w := do(t, h, http.MethodPost, "/clients", `{"nom":"ACME"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("client: %d", w.Code)
	}

	w = do(t, h, http.MethodGet, "/export/csv?type=clients", "")
	if w.Code != http.StatusOK {
		t.Fatalf("csv: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "ACME") {
		t.Fatalf("csv body = %q", w.Body.String())
	}
	if w := do(t, h, http.MethodGet, "/export/csv?type=autre", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad type: %d", w.Code)
	}

	w = do(t, h, http.MethodGet, "/export/excel", "")
	if w.Code != http.StatusOK {
		t.Fatalf("excel: %d", w.Code)
	}
	if b := w.Body.Bytes(); len(b) < 2 || b[0] != 'P' || b[1] != 'K' {
		t.Fatal("excel body is not a zip archive")
	}
}

func TestProfilRoundTripOverHTTP(t *testing.T) {
	h := setupRouter(t)

	w := do(t, h, http.MethodGet, "/config", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get config: %d", w.Code)
	}
	if got := decode(t, w)["nom"]; got != "Jean Dupont" {
		t.Fatalf("nom = %v", got)
	}

	w = do(t, h, http.MethodPost, "/config",
		`{"nom":"Jean Dupont","statut":"micro-entreprise","seuil_ca":77700,"delai_paiement":45,"iban":"FR76123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("save config: %d body=%s", w.Code, w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/config", "")
	got := decode(t, w)
	if got["delai_paiement"].(float64) != 45 {
		t.Fatalf("delai = %v, want 45", got["delai_paiement"])
	}
	if got["iban"] != "FR76123" {
		t.Fatalf("iban = %v", got["iban"])
	}
}
