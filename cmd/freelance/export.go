package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diewo77/freelance-manager/internal/export"
)

func (a *app) runExport(args []string) error {
	if len(args) < 1 {
		return subUsage("usage: freelance export {csv,excel} [--annee Y] [--type T]")
	}
	switch args[0] {
	case "csv":
		fs := flag.NewFlagSet("export csv", flag.ExitOnError)
		annee := fs.Int("annee", 0, "filtrer par année de création")
		docType := fs.String("type", "", "clients, devis, factures ou contrats (défaut: tout)")
		_ = fs.Parse(args[1:])
		wb, err := a.loadWorkbook(*annee)
		if err != nil {
			return err
		}
		types := []string{"clients", "devis", "factures", "contrats"}
		if *docType != "" {
			types = []string{*docType}
		}
		for _, ty := range types {
			path, err := a.writeCSVFile(ty, wb)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Export CSV: %s\n", path)
		}
		return nil
	case "excel":
		fs := flag.NewFlagSet("export excel", flag.ExitOnError)
		annee := fs.Int("annee", 0, "filtrer par année de création")
		_ = fs.Parse(args[1:])
		wb, err := a.loadWorkbook(*annee)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(a.cfg.OutputDir, "export_"+time.Now().Format("20060102")+".xlsx")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := export.Excel(f, wb); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("✓ Export Excel: %s\n", path)
		return nil
	default:
		return subUsage("usage: freelance export {csv,excel} [--annee Y] [--type T]")
	}
}

func (a *app) loadWorkbook(annee int) (export.Workbook, error) {
	var wb export.Workbook
	if err := a.db.Order("nom").Find(&wb.Clients).Error; err != nil {
		return wb, err
	}
	dq := a.db.Order("numero")
	fq := a.db.Order("numero")
	cq := a.db.Order("numero")
	if annee != 0 {
		start := time.Date(annee, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		dq = dq.Where("date_creation >= ? AND date_creation < ?", start, end)
		fq = fq.Where("date_creation >= ? AND date_creation < ?", start, end)
		cq = cq.Where("date_creation >= ? AND date_creation < ?", start, end)
	}
	if err := dq.Find(&wb.Devis).Error; err != nil {
		return wb, err
	}
	if err := fq.Find(&wb.Factures).Error; err != nil {
		return wb, err
	}
	if err := cq.Find(&wb.Contrats).Error; err != nil {
		return wb, err
	}
	return wb, nil
}

func (a *app) writeCSVFile(docType string, wb export.Workbook) (string, error) {
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(a.cfg.OutputDir, docType+"_"+time.Now().Format("20060102")+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	switch docType {
	case "clients":
		err = export.ClientsCSV(f, wb.Clients)
	case "devis":
		err = export.DevisCSV(f, wb.Devis)
	case "factures":
		err = export.FacturesCSV(f, wb.Factures)
	case "contrats":
		err = export.ContratsCSV(f, wb.Contrats)
	default:
		return "", fmt.Errorf("type d'export inconnu %q", docType)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
