package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is the freelancer identity block rendered on every document.
// It is loaded once at startup and rewritten in full by Save.
type Profile struct {
	Nom           string  `yaml:"nom" json:"nom"`
	SIRET         string  `yaml:"siret" json:"siret"`
	Adresse       string  `yaml:"adresse" json:"adresse"`
	CodePostal    string  `yaml:"code_postal" json:"code_postal"`
	Ville         string  `yaml:"ville" json:"ville"`
	Email         string  `yaml:"email" json:"email"`
	Telephone     string  `yaml:"telephone" json:"telephone"`
	Statut        string  `yaml:"statut" json:"statut"` // ex: micro-entreprise
	TVAApplicable bool    `yaml:"tva_applicable" json:"tva_applicable"`
	Banque        string  `yaml:"banque" json:"banque"`
	IBAN          string  `yaml:"iban" json:"iban"`
	BIC           string  `yaml:"bic" json:"bic"`
	SeuilCA       float64 `yaml:"seuil_ca" json:"seuil_ca"`             // plafond micro-entreprise
	DelaiPaiement int     `yaml:"delai_paiement" json:"delai_paiement"` // jours
}

const (
	DefaultSeuilCA       = 77700
	DefaultDelaiPaiement = 30
)

// LoadProfile reads the YAML profile at path. A missing file yields an empty
// profile with defaults so a fresh install can start and fill it in later.
func LoadProfile(path string) (Profile, error) {
	p := Profile{SeuilCA: DefaultSeuilCA, DelaiPaiement: DefaultDelaiPaiement, Statut: "micro-entreprise"}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.SeuilCA <= 0 {
		p.SeuilCA = DefaultSeuilCA
	}
	if p.DelaiPaiement <= 0 {
		p.DelaiPaiement = DefaultDelaiPaiement
	}
	return p, nil
}

// SaveProfile rewrites the whole profile file.
func SaveProfile(path string, p Profile) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", path, err)
	}
	return nil
}
