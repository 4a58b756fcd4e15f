// Package docx renders service contracts as Word documents. The clause text
// follows the three French contract models: régie (temps passé), forfait
// (prix fixe) and mission (engagement court).
package docx

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/pdf"
)

var contratTitles = map[string]string{
	models.ContratRegie:   "CONTRAT DE PRESTATION EN RÉGIE",
	models.ContratForfait: "CONTRAT DE PRESTATION AU FORFAIT",
	models.ContratMission: "CONTRAT DE MISSION",
}

// WriteContrat renders the contract document to w.
func WriteContrat(w io.Writer, c *models.Contrat, client *models.Client, p appconfig.Profile) error {
	doc := docx.New().WithDefaultTheme()

	title := contratTitles[c.TypeContrat]
	if title == "" {
		title = "CONTRAT DE PRESTATION"
	}
	tp := doc.AddParagraph().Justification("center")
	tp.AddText(title).Size("32").Bold()
	np := doc.AddParagraph().Justification("center")
	np.AddText("N° " + c.Numero).Size("24")
	doc.AddParagraph()

	doc.AddParagraph().AddText("Entre les soussignés :").Bold()
	prestataire := fmt.Sprintf("%s, %s, SIRET %s, %s, %s %s, ci-après « le Prestataire »,",
		p.Nom, p.Statut, p.SIRET, p.Adresse, p.CodePostal, p.Ville)
	doc.AddParagraph().AddText(prestataire)
	doc.AddParagraph().AddText("et")
	cl := fmt.Sprintf("%s, SIRET %s, %s, %s %s, ci-après « le Client »,",
		client.Nom, client.SIRET, client.Adresse, client.CodePostal, client.Ville)
	doc.AddParagraph().AddText(cl)
	doc.AddParagraph()

	article(doc, "Article 1 – Objet", c.Objet)

	var prix string
	switch c.TypeContrat {
	case models.ContratForfait:
		prix = fmt.Sprintf("La prestation est facturée au forfait pour un montant de %s HT.",
			pdf.Euros(c.MontantForfait))
	default:
		prix = fmt.Sprintf("La prestation est facturée au temps passé sur la base d'un taux journalier de %s HT",
			pdf.Euros(c.TJM))
		if c.DureeJours > 0 {
			prix += fmt.Sprintf(", pour une durée estimée de %d jours", c.DureeJours)
		}
		prix += "."
	}
	article(doc, "Article 2 – Prix", prix)

	var duree strings.Builder
	duree.WriteString("Le présent contrat prend effet")
	if c.DateDebut != nil {
		duree.WriteString(" le " + c.DateDebut.Format("02/01/2006"))
	} else {
		duree.WriteString(" à sa signature")
	}
	if c.DateFin != nil {
		duree.WriteString(" et s'achève le " + c.DateFin.Format("02/01/2006"))
	}
	duree.WriteString(".")
	article(doc, "Article 3 – Durée", duree.String())

	tva := "TVA au taux légal en vigueur."
	if !p.TVAApplicable {
		tva = "TVA non applicable, article 293 B du CGI."
	}
	article(doc, "Article 4 – Facturation", fmt.Sprintf(
		"Les factures sont payables à %d jours. %s "+
			"En cas de retard de paiement, des pénalités de retard au taux légal en vigueur seront appliquées de plein droit, "+
			"ainsi qu'une indemnité forfaitaire pour frais de recouvrement de 40 euros (art. L.441-10 du Code de commerce).",
		p.DelaiPaiement, tva))

	if c.TypeContrat == models.ContratForfait {
		article(doc, "Article 5 – Pénalités de retard de livraison",
			"En cas de retard imputable au Prestataire dans la livraison des livrables, des pénalités de retard "+
				"pourront être appliquées à hauteur de 1% du montant forfaitaire par semaine de retard, "+
				"plafonnées à 10% du montant total. Ces pénalités ne seront pas applicables si le retard est "+
				"imputable au Client (retard de validation, changement de spécifications, etc.).")
	}

	doc.AddParagraph()
	sig := doc.AddParagraph()
	sig.AddText("Fait en deux exemplaires, le " + c.DateCreation.Format("02/01/2006") + ".")
	doc.AddParagraph().AddText("Le Prestataire :                                Le Client :")

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write contrat %s: %w", c.Numero, err)
	}
	return nil
}

func article(doc *docx.Docx, heading, body string) {
	h := doc.AddParagraph()
	h.AddText(heading).Bold()
	doc.AddParagraph().AddText(body)
	doc.AddParagraph()
}
