package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/models"
)

func TestFilenames(t *testing.T) {
	if got := DevisFilename("DEVIS-2024-001"); got != "DEVIS-2024-001.pdf" {
		t.Errorf("devis filename = %q", got)
	}
	if got := FactureFilename("FACT-2024-012"); got != "FACT-2024-012.pdf" {
		t.Errorf("facture filename = %q", got)
	}
	if got := ContratFilename("CONT-2024-003", "forfait"); got != "CONT-2024-003_forfait.docx" {
		t.Errorf("contrat filename = %q", got)
	}
}

func TestRendererDevisIdempotent(t *testing.T) {
	dir := t.TempDir()
	r := New(filepath.Join(dir, "output"), appconfig.Profile{Nom: "Jean Dupont", Statut: "micro-entreprise"})

	d := models.Devis{
		Numero: "DEVIS-2024-001", ClientID: 1, TJM: 300, Jours: 5,
		TotalHT: 1500, TotalTTC: 1500, Statut: models.DevisDraft,
		TypeTarif: models.TarifTJM, ValiditeJours: 30,
		DateCreation: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	c := models.Client{ID: 1, Nom: "ACME"}

	p1, err := r.Devis(&d, &c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// Une régénération écrase le même fichier, jamais un nouveau.
	p2, err := r.Devis(&d, &c)
	if err != nil {
		t.Fatalf("re-render: %v", err)
	}
	if p1 != p2 {
		t.Fatalf("paths differ: %q vs %q", p1, p2)
	}
	entries, err := os.ReadDir(filepath.Dir(p1))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("%d files in output dir, want 1", len(entries))
	}
}

func TestRendererContrat(t *testing.T) {
	dir := t.TempDir()
	r := New(dir, appconfig.Profile{Nom: "Jean Dupont"})

	debut := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fin := debut.AddDate(0, 2, 0)
	ct := models.Contrat{
		Numero: "CONT-2024-001", ClientID: 1, TypeContrat: models.ContratRegie,
		Objet: "Développement", TJM: 450, DureeJours: 40,
		DateDebut: &debut, DateFin: &fin, Statut: "brouillon",
		DateCreation: debut,
	}
	c := models.Client{ID: 1, Nom: "ACME"}

	path, err := r.Contrat(&ct, &c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// Un .docx est une archive zip.
	if len(b) < 4 || b[0] != 'P' || b[1] != 'K' {
		t.Fatalf("output does not look like a docx (zip), got % x", b[:min(len(b), 4)])
	}
	if filepath.Base(path) != "CONT-2024-001_regie.docx" {
		t.Fatalf("path = %q", path)
	}
}
