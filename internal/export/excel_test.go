package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/diewo77/freelance-manager/internal/models"
)

func TestExcelWorkbook(t *testing.T) {
	wb := Workbook{
		Clients: []models.Client{{ID: 1, Nom: "ACME"}},
		Devis: []models.Devis{{
			Numero: "DEVIS-2024-001", ClientID: 1, TJM: 300, Jours: 5,
			TotalHT: 1500, TotalTTC: 1500, Statut: models.DevisDraft,
			TypeTarif: models.TarifTJM,
			DateCreation: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	var buf bytes.Buffer
	if err := Excel(&buf, wb); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open back: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Clients": true, "Devis": true, "Factures": true, "Contrats": true}
	for _, s := range sheets {
		if !want[s] {
			t.Errorf("unexpected sheet %q", s)
		}
		delete(want, s)
	}
	for s := range want {
		t.Errorf("missing sheet %q", s)
	}

	got, err := f.GetCellValue("Devis", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "DEVIS-2024-001" {
		t.Fatalf("Devis!A2 = %q", got)
	}
	head, err := f.GetCellValue("Clients", "B1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if head != "nom" {
		t.Fatalf("Clients!B1 = %q, want nom", head)
	}
}
