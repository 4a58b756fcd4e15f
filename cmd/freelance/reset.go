package main

import (
	"flag"
	"fmt"
)

func (a *app) runReset(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	compteurs := fs.Bool("compteurs", false, "remettre les compteurs de numérotation à zéro")
	all := fs.Bool("all", false, "supprimer toutes les données")
	force := fs.Bool("force", false, "confirmer l'opération")
	_ = fs.Parse(args)

	if *compteurs == *all {
		return subUsage("usage: freelance reset {--compteurs | --all} --force")
	}
	if !*force {
		return subUsage("opération destructive: ajouter --force pour confirmer")
	}
	if *all {
		if err := a.reset.ResetAll(); err != nil {
			return err
		}
		fmt.Println("✓ Toutes les données ont été supprimées")
		return nil
	}
	if err := a.reset.ResetCounters(); err != nil {
		return err
	}
	fmt.Println("✓ Compteurs remis à zéro (les prochains documents repartent de 001)")
	return nil
}
