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

// RenderDevis produces the PDF bytes for a devis. Rendering is a pure
// function of (devis, client, profile): regenerating yields an equivalent
// document, never a new number.
func RenderDevis(d *models.Devis, c *models.Client, p appconfig.Profile) ([]byte, error) {
	m := newDocument()

	m.AddRow(12, text.NewCol(12, "DEVIS "+d.Numero,
		props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(6, text.NewCol(12, "Date : "+d.DateCreation.Format("02/01/2006"),
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
	m.AddRow(5, text.NewCol(12, d.Description, props.Text{Size: 9}))

	m.AddRow(6,
		text.NewCol(6, "Désignation", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, "TJM", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Jours", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Total HT", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}))
	if d.TypeTarif == models.TarifForfait {
		m.AddRow(6,
			text.NewCol(6, "Prestation au forfait", props.Text{Size: 9}),
			text.NewCol(2, "-", props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, "-", props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, Euros(d.TotalHT), props.Text{Size: 9, Align: align.Right}))
	} else {
		m.AddRow(6,
			text.NewCol(6, "Prestation en régie", props.Text{Size: 9}),
			text.NewCol(2, Euros(d.TJM), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%g", d.Jours), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, Euros(d.TotalHT), props.Text{Size: 9, Align: align.Right}))
	}
	m.AddRow(4, line.NewCol(12))
	m.AddRow(6,
		text.NewCol(10, "Total HT", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, Euros(d.TotalHT), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}))
	m.AddRow(6,
		text.NewCol(10, "Total TTC", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, Euros(d.TotalTTC), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}))

	if !p.TVAApplicable {
		m.AddRow(5, text.NewCol(12, "* "+mentionTVANonApplicable, props.Text{Size: 8, Style: fontstyle.Italic, Top: 2}))
	}
	m.AddRow(5, text.NewCol(12,
		fmt.Sprintf("Devis valable %d jours à compter de sa date d'émission.", d.ValiditeJours),
		props.Text{Size: 8}))
	if d.Acompte {
		m.AddRow(5, text.NewCol(12, "Un acompte de 30 % sera demandé à la signature.", props.Text{Size: 8}))
	}
	if d.Notes != "" {
		m.AddRow(5, text.NewCol(12, d.Notes, props.Text{Size: 8, Style: fontstyle.Italic}))
	}
	m.AddRow(8, text.NewCol(12, "Bon pour accord (date et signature) :", props.Text{Size: 9, Top: 4}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render devis %s: %w", d.Numero, err)
	}
	return doc.GetBytes(), nil
}
