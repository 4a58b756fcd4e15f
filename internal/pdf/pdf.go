// Package pdf renders devis and factures with the legally mandated French
// invoicing mentions. Layout is delegated to maroto; this package only wires
// entity data and legal text into rows.
package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/core"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/models"
)

const (
	mentionTVANonApplicable = "TVA non applicable, art. 293 B du CGI"
	mentionPenalites        = "En cas de retard de paiement, une pénalité égale à 3 fois le taux d'intérêt légal " +
		"sera appliquée, ainsi qu'une indemnité forfaitaire pour frais de recouvrement de 40 € " +
		"(art. L.441-10 du Code de commerce)."
	mentionEscompte = "Pas d'escompte pour règlement anticipé."
)

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	return maroto.New(cfg)
}

// Euros formats an amount the French way: 1 500,00 €.
func Euros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + decPart + " €"
	if neg {
		out = "-" + out
	}
	return out
}

// identityLines renders the freelancer block shown on every document.
func identityLines(p appconfig.Profile) []string {
	lines := []string{p.Nom}
	if p.Statut != "" {
		lines = append(lines, p.Statut)
	}
	if p.Adresse != "" {
		lines = append(lines, p.Adresse)
	}
	if p.CodePostal != "" || p.Ville != "" {
		lines = append(lines, strings.TrimSpace(p.CodePostal+" "+p.Ville))
	}
	if p.SIRET != "" {
		lines = append(lines, "SIRET : "+p.SIRET)
	}
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	if p.Telephone != "" {
		lines = append(lines, p.Telephone)
	}
	return lines
}

func clientLines(c models.Client) []string {
	lines := []string{c.Nom}
	if c.ContactNom != "" {
		lines = append(lines, "À l'attention de "+c.ContactNom)
	}
	if c.Adresse != "" {
		lines = append(lines, c.Adresse)
	}
	if c.CodePostal != "" || c.Ville != "" {
		lines = append(lines, strings.TrimSpace(c.CodePostal+" "+c.Ville))
	}
	if c.SIRET != "" {
		lines = append(lines, "SIRET : "+c.SIRET)
	}
	return lines
}
