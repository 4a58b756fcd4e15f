package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/diewo77/freelance-manager/internal/models"
)

// Workbook bundles everything the accountant-facing Excel export covers.
type Workbook struct {
	Clients  []models.Client
	Devis    []models.Devis
	Factures []models.Facture
	Contrats []models.Contrat
}

// Excel writes one sheet per entity type with the same columns as the CSV
// exports.
func Excel(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	devisRows := make([][]string, 0, len(wb.Devis))
	for _, d := range wb.Devis {
		devisRows = append(devisRows, DevisRow(d))
	}
	factureRows := make([][]string, 0, len(wb.Factures))
	for _, fa := range wb.Factures {
		factureRows = append(factureRows, FactureRow(fa))
	}
	clientRows := make([][]string, 0, len(wb.Clients))
	for _, c := range wb.Clients {
		clientRows = append(clientRows, ClientRow(c))
	}
	contratRows := make([][]string, 0, len(wb.Contrats))
	for _, c := range wb.Contrats {
		contratRows = append(contratRows, ContratRow(c))
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{"Clients", ClientHeaders, clientRows},
		{"Devis", DevisHeaders, devisRows},
		{"Factures", FactureHeaders, factureRows},
		{"Contrats", ContratHeaders, contratRows},
	}
	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
		if err := fillSheet(f, s.name, s.headers, s.rows); err != nil {
			return err
		}
	}
	// Drop the default sheet created by excelize.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func fillSheet(f *excelize.File, sheet string, headers []string, rows [][]string) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
