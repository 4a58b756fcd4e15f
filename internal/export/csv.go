package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/diewo77/freelance-manager/internal/models"
)

// CSV files use the ';' delimiter expected by French spreadsheet locales.

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func ClientsCSV(w io.Writer, clients []models.Client) error {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, ClientRow(c))
	}
	return writeCSV(w, ClientHeaders, rows)
}

func DevisCSV(w io.Writer, devis []models.Devis) error {
	rows := make([][]string, 0, len(devis))
	for _, d := range devis {
		rows = append(rows, DevisRow(d))
	}
	return writeCSV(w, DevisHeaders, rows)
}

func FacturesCSV(w io.Writer, factures []models.Facture) error {
	rows := make([][]string, 0, len(factures))
	for _, f := range factures {
		rows = append(rows, FactureRow(f))
	}
	return writeCSV(w, FactureHeaders, rows)
}

func ContratsCSV(w io.Writer, contrats []models.Contrat) error {
	rows := make([][]string, 0, len(contrats))
	for _, c := range contrats {
		rows = append(rows, ContratRow(c))
	}
	return writeCSV(w, ContratHeaders, rows)
}
