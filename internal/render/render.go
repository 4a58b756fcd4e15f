// Package render writes generated documents to the output directory. The
// filename is derived from the assigned numero, so regeneration overwrites
// the same artifact instead of minting anything new, and two documents can
// never collide while numbering holds.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/docx"
	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/pdf"
)

type Renderer struct {
	OutputDir string
	Profile   appconfig.Profile
}

func New(outputDir string, profile appconfig.Profile) *Renderer {
	return &Renderer{OutputDir: outputDir, Profile: profile}
}

func DevisFilename(numero string) string   { return numero + ".pdf" }
func FactureFilename(numero string) string { return numero + ".pdf" }
func ContratFilename(numero, typeContrat string) string {
	return fmt.Sprintf("%s_%s.docx", numero, typeContrat)
}

func (r *Renderer) ensureDir() error {
	return os.MkdirAll(r.OutputDir, 0o755)
}

// Devis renders the devis PDF and returns the written path.
func (r *Renderer) Devis(d *models.Devis, c *models.Client) (string, error) {
	b, err := pdf.RenderDevis(d, c, r.Profile)
	if err != nil {
		return "", err
	}
	return r.write(DevisFilename(d.Numero), b)
}

// Facture renders the facture PDF and returns the written path.
func (r *Renderer) Facture(f *models.Facture, c *models.Client) (string, error) {
	b, err := pdf.RenderFacture(f, c, r.Profile)
	if err != nil {
		return "", err
	}
	return r.write(FactureFilename(f.Numero), b)
}

// Contrat renders the contract DOCX and returns the written path.
func (r *Renderer) Contrat(ct *models.Contrat, c *models.Client) (string, error) {
	if err := r.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(r.OutputDir, ContratFilename(ct.Numero, ct.TypeContrat))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := docx.WriteContrat(f, ct, c, r.Profile); err != nil {
		return "", err
	}
	return path, nil
}

func (r *Renderer) write(name string, b []byte) (string, error) {
	if err := r.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(r.OutputDir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
