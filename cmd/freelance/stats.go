package main

import (
	"flag"
	"fmt"

	"github.com/diewo77/freelance-manager/internal/pdf"
)

var moisNoms = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

func (a *app) runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	annee := fs.Int("annee", 0, "année (défaut: année courante)")
	_ = fs.Parse(args)

	st, err := a.stats.Compute(*annee)
	if err != nil {
		return err
	}
	fmt.Printf("=== Statistiques %d ===\n", st.Annee)
	fmt.Printf("Chiffre d'affaires (factures payées): %s\n", pdf.Euros(st.TotalRevenue))
	fmt.Printf("Clients actifs: %d    Devis en attente: %d\n", st.ClientsActifs, st.DevisEnAttente)
	fmt.Printf("En attente de paiement: %s\n", pdf.Euros(st.UnpaidTotal))
	if len(st.OverdueList) > 0 {
		fmt.Printf("Factures en retard:\n")
		for _, f := range st.OverdueList {
			fmt.Printf("  %s  %s  échéance %s\n", f.Numero, pdf.Euros(f.TotalHT), f.DateEcheance.Format("2006-01-02"))
		}
	}
	fmt.Println("CA mensuel:")
	for i, m := range st.MonthlyBreakdown {
		if m > 0 {
			fmt.Printf("  %-10s %s\n", moisNoms[i], pdf.Euros(m))
		}
	}
	// Alerte purement informative: rien ne bloque la facturation au-delà du seuil.
	fmt.Printf("Seuil micro-entreprise: %.1f %% utilisé\n", st.ThresholdRatio*100)
	if st.ThresholdRatio >= 0.8 {
		fmt.Println("⚠ Attention: vous approchez du plafond de chiffre d'affaires.")
	}
	return nil
}
