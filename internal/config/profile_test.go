package config

import (
	"path/filepath"
	"testing"
)

func TestLoadProfileMissingFile(t *testing.T) {
	p, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if p.SeuilCA != DefaultSeuilCA {
		t.Errorf("seuil = %v, want %v", p.SeuilCA, DefaultSeuilCA)
	}
	if p.DelaiPaiement != DefaultDelaiPaiement {
		t.Errorf("delai = %d, want %d", p.DelaiPaiement, DefaultDelaiPaiement)
	}
	if p.Statut != "micro-entreprise" {
		t.Errorf("statut = %q", p.Statut)
	}
}

func TestSaveThenLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := Profile{
		Nom:           "Jean Dupont",
		SIRET:         "12345678900011",
		Ville:         "Nantes",
		Statut:        "micro-entreprise",
		IBAN:          "FR7612345678901234567890123",
		SeuilCA:       77700,
		DelaiPaiement: 45,
	}
	if err := SaveProfile(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", out, in)
	}
}

func TestLoadProfileZeroValuesGetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveProfile(path, Profile{Nom: "Jean"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.SeuilCA != DefaultSeuilCA || p.DelaiPaiement != DefaultDelaiPaiement {
		t.Fatalf("defaults not applied: %#v", p)
	}
}
