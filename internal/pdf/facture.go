package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "github.com/diewo77/freelance-manager/internal/config"
	"github.com/diewo77/freelance-manager/internal/models"
)

// RenderFacture produces the PDF bytes for a facture, including the mandated
// late-payment and recovery-indemnity mentions.
func RenderFacture(f *models.Facture, c *models.Client, p appconfig.Profile) ([]byte, error) {
	m := newDocument()

	m.AddRow(12, text.NewCol(12, "FACTURE "+f.Numero,
		props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(6, text.NewCol(12,
		"Date d'émission : "+f.DateCreation.Format("02/01/2006")+
			"    Échéance : "+f.DateEcheance.Format("02/01/2006"),
		props.Text{Size: 9, Align: align.Center}))
	m.AddRow(4, line.NewCol(12))

	left := identityLines(p)
	right := clientLines(*c)
	rows := max(len(left), len(right))
	m.AddRow(5,
		text.NewCol(6, "Prestataire", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(6, "Client", props.Text{Size: 10, Style: fontstyle.Bold}))
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		m.AddRow(4,
			text.NewCol(6, l, props.Text{Size: 9}),
			text.NewCol(6, r, props.Text{Size: 9}))
	}

	m.AddRow(8, text.NewCol(12, "Prestation", props.Text{Size: 11, Style: fontstyle.Bold, Top: 3}))
	m.AddRow(5, text.NewCol(12, f.Description, props.Text{Size: 9}))
	if f.DateDebutMission != nil && f.DateFinMission != nil {
		m.AddRow(5, text.NewCol(12,
			"Période : du "+f.DateDebutMission.Format("02/01/2006")+" au "+f.DateFinMission.Format("02/01/2006"),
			props.Text{Size: 9}))
	}

	m.AddRow(6,
		text.NewCol(6, "Désignation", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, "TJM", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Jours", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Total HT", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}))
	if f.TypeTarif == models.TarifForfait {
		m.AddRow(6,
			text.NewCol(6, "Prestation au forfait", props.Text{Size: 9}),
			text.NewCol(2, "-", props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, "-", props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, Euros(f.TotalHT), props.Text{Size: 9, Align: align.Right}))
	} else {
		m.AddRow(6,
			text.NewCol(6, "Prestation en régie", props.Text{Size: 9}),
			text.NewCol(2, Euros(f.TJM), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%g", f.JoursEffectifs), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, Euros(f.TotalHT), props.Text{Size: 9, Align: align.Right}))
	}
	m.AddRow(4, line.NewCol(12))
	m.AddRow(6,
		text.NewCol(10, "Total HT", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, Euros(f.TotalHT), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}))
	m.AddRow(6,
		text.NewCol(10, "Total TTC", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, Euros(f.TotalTTC), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}))

	if p.IBAN != "" {
		m.AddRow(8, text.NewCol(12, "Règlement par virement", props.Text{Size: 10, Style: fontstyle.Bold, Top: 3}))
		if p.Banque != "" {
			m.AddRow(4, text.NewCol(12, "Banque : "+p.Banque, props.Text{Size: 9}))
		}
		m.AddRow(4, text.NewCol(12, "IBAN : "+p.IBAN, props.Text{Size: 9}))
		if p.BIC != "" {
			m.AddRow(4, text.NewCol(12, "BIC : "+p.BIC, props.Text{Size: 9}))
		}
	}

	if !p.TVAApplicable {
		m.AddRow(5, text.NewCol(12, "* "+mentionTVANonApplicable, props.Text{Size: 8, Style: fontstyle.Italic, Top: 2}))
	}
	m.AddRow(5, text.NewCol(12, mentionPenalites, props.Text{Size: 7}))
	m.AddRow(5, text.NewCol(12, mentionEscompte, props.Text{Size: 7}))
	if f.Notes != "" {
		m.AddRow(5, text.NewCol(12, f.Notes, props.Text{Size: 8, Style: fontstyle.Italic}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render facture %s: %w", f.Numero, err)
	}
	return doc.GetBytes(), nil
}
