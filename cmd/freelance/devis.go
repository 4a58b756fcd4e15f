package main

import (
	"flag"
	"fmt"

	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/services"
)

func (a *app) runDevis(args []string) error {
	if len(args) < 1 {
		return subUsage("usage: freelance devis {create,list,statut,pdf,delete}")
	}
	switch args[0] {
	case "create":
		fs := flag.NewFlagSet("devis create", flag.ExitOnError)
		clientID := fs.Uint("client", 0, "id du client")
		description := fs.String("description", "", "description de la prestation")
		tjm := fs.Float64("tjm", 0, "taux journalier moyen")
		jours := fs.Float64("jours", 0, "nombre de jours")
		forfait := fs.Float64("forfait", 0, "montant forfaitaire (active le mode forfait)")
		validite := fs.Int("validite", 30, "validité en jours")
		notes := fs.String("notes", "", "notes")
		sansAcompte := fs.Bool("sans-acompte", false, "ne pas demander d'acompte")
		_ = fs.Parse(args[1:])
		in := services.DevisInput{
			ClientID:      uint(*clientID),
			Description:   *description,
			TJM:           *tjm,
			Jours:         *jours,
			ValiditeJours: *validite,
			Notes:         *notes,
		}
		if *forfait > 0 {
			in.TypeTarif = models.TarifForfait
			in.MontantForfait = *forfait
		}
		if *sansAcompte {
			f := false
			in.Acompte = &f
		}
		d, err := a.devis.Create(in)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Devis %s créé (total HT %.2f €)\n", d.Numero, d.TotalHT)
		return nil
	case "list":
		fs := flag.NewFlagSet("devis list", flag.ExitOnError)
		clientID := fs.Uint("client", 0, "filtrer par client")
		statut := fs.String("statut", "", "filtrer par statut")
		_ = fs.Parse(args[1:])
		list, err := a.devis.List(uint(*clientID), models.DevisStatut(*statut))
		if err != nil {
			return err
		}
		for _, d := range list {
			fmt.Printf("%-16s client=%-4d %-9s %10.2f €  %s\n",
				d.Numero, d.ClientID, d.Statut, d.TotalHT, d.DateCreation.Format("2006-01-02"))
		}
		fmt.Printf("%d devis\n", len(list))
		return nil
	case "statut":
		fs := flag.NewFlagSet("devis statut", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du devis")
		statut := fs.String("statut", "", "nouveau statut (sent, accepted, refused, expired)")
		_ = fs.Parse(args[1:])
		d, err := a.devis.UpdateStatut(uint(*id), models.DevisStatut(*statut))
		if err != nil {
			return err
		}
		fmt.Printf("✓ Devis %s → %s\n", d.Numero, d.Statut)
		return nil
	case "pdf":
		fs := flag.NewFlagSet("devis pdf", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du devis")
		_ = fs.Parse(args[1:])
		d, err := a.devis.Get(uint(*id))
		if err != nil {
			return err
		}
		c, err := a.clients.Get(d.ClientID)
		if err != nil {
			return err
		}
		path, err := a.renderer.Devis(d, c)
		if err != nil {
			return err
		}
		fmt.Printf("✓ PDF généré: %s\n", path)
		return nil
	case "delete":
		fs := flag.NewFlagSet("devis delete", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du devis")
		_ = fs.Parse(args[1:])
		if err := a.devis.Delete(uint(*id)); err != nil {
			return err
		}
		fmt.Printf("✓ Devis #%d supprimé (son numéro reste réservé)\n", *id)
		return nil
	case "convert":
		fs := flag.NewFlagSet("devis convert", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du devis accepté")
		jours := fs.Float64("jours", 0, "jours effectifs")
		_ = fs.Parse(args[1:])
		f, err := a.factures.CreateFromDevis(uint(*id), *jours, services.FactureInput{})
		if err != nil {
			return err
		}
		fmt.Printf("✓ Facture %s créée depuis le devis (total HT %.2f €)\n", f.Numero, f.TotalHT)
		return nil
	default:
		return subUsage("usage: freelance devis {create,list,statut,pdf,convert,delete}")
	}
}
