package main

import (
	"flag"
	"fmt"

	"github.com/diewo77/freelance-manager/internal/services"
)

func (a *app) runContrat(args []string) error {
	if len(args) < 1 {
		return subUsage("usage: freelance contrat {generate,list,delete}")
	}
	switch args[0] {
	case "generate":
		fs := flag.NewFlagSet("contrat generate", flag.ExitOnError)
		clientID := fs.Uint("client", 0, "id du client")
		typeContrat := fs.String("type", "", "regie, forfait ou mission")
		objet := fs.String("objet", "", "objet du contrat")
		tjm := fs.Float64("tjm", 0, "taux journalier moyen")
		duree := fs.Int("duree", 0, "durée en jours")
		forfait := fs.Float64("forfait", 0, "montant forfaitaire")
		debut := fs.String("debut", "", "date de début (AAAA-MM-JJ)")
		fin := fs.String("fin", "", "date de fin (AAAA-MM-JJ)")
		_ = fs.Parse(args[1:])
		in := services.ContratInput{
			ClientID:       uint(*clientID),
			TypeContrat:    *typeContrat,
			Objet:          *objet,
			TJM:            *tjm,
			DureeJours:     *duree,
			MontantForfait: *forfait,
		}
		var err error
		if in.DateDebut, err = parseDateFlag(*debut); err != nil {
			return err
		}
		if in.DateFin, err = parseDateFlag(*fin); err != nil {
			return err
		}
		ct, err := a.contrats.Create(in)
		if err != nil {
			return err
		}
		client, err := a.clients.Get(ct.ClientID)
		if err != nil {
			return err
		}
		path, err := a.renderer.Contrat(ct, client)
		if err != nil {
			// Le contrat existe et garde son numéro; le document peut être
			// régénéré depuis la même entité.
			return fmt.Errorf("contrat %s créé mais génération du document échouée: %w", ct.Numero, err)
		}
		if err := a.contrats.SetFichierPath(ct.ID, path); err != nil {
			return err
		}
		fmt.Printf("✓ Contrat %s généré: %s\n", ct.Numero, path)
		return nil
	case "list":
		fs := flag.NewFlagSet("contrat list", flag.ExitOnError)
		clientID := fs.Uint("client", 0, "filtrer par client")
		typeContrat := fs.String("type", "", "filtrer par type")
		_ = fs.Parse(args[1:])
		list, err := a.contrats.List(uint(*clientID), *typeContrat)
		if err != nil {
			return err
		}
		for _, c := range list {
			fmt.Printf("%-16s client=%-4d %-8s %s\n", c.Numero, c.ClientID, c.TypeContrat, c.Objet)
		}
		fmt.Printf("%d contrat(s)\n", len(list))
		return nil
	case "delete":
		fs := flag.NewFlagSet("contrat delete", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du contrat")
		_ = fs.Parse(args[1:])
		if err := a.contrats.Delete(uint(*id)); err != nil {
			return err
		}
		fmt.Printf("✓ Contrat #%d supprimé (son numéro reste réservé)\n", *id)
		return nil
	default:
		return subUsage("usage: freelance contrat {generate,list,delete}")
	}
}
