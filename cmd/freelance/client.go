package main

import (
	"flag"
	"fmt"

	"github.com/diewo77/freelance-manager/internal/services"
)

func (a *app) runClient(args []string) error {
	if len(args) < 1 {
		return subUsage("usage: freelance client {add,list,show,edit,delete}")
	}
	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("client add", flag.ExitOnError)
		in := clientFlags(fs)
		_ = fs.Parse(args[1:])
		c, err := a.clients.Create(*in)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Client #%d créé: %s\n", c.ID, c.Nom)
		return nil
	case "list":
		list, err := a.clients.List()
		if err != nil {
			return err
		}
		for _, c := range list {
			fmt.Printf("%-4d %-30s %-15s %s %s\n", c.ID, c.Nom, c.SIRET, c.CodePostal, c.Ville)
		}
		fmt.Printf("%d client(s)\n", len(list))
		return nil
	case "show":
		fs := flag.NewFlagSet("client show", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du client")
		_ = fs.Parse(args[1:])
		c, err := a.clients.Get(uint(*id))
		if err != nil {
			return err
		}
		fmt.Printf("Client #%d\n  Nom:       %s\n  SIRET:     %s\n  Adresse:   %s, %s %s\n  Email:     %s\n  Téléphone: %s\n  Contact:   %s\n",
			c.ID, c.Nom, c.SIRET, c.Adresse, c.CodePostal, c.Ville, c.Email, c.Telephone, c.ContactNom)
		return nil
	case "edit":
		fs := flag.NewFlagSet("client edit", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du client")
		in := clientFlags(fs)
		_ = fs.Parse(args[1:])
		c, err := a.clients.Update(uint(*id), *in)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Client #%d mis à jour\n", c.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("client delete", flag.ExitOnError)
		id := fs.Uint("id", 0, "id du client")
		cascade := fs.Bool("cascade", false, "supprimer aussi les documents liés")
		_ = fs.Parse(args[1:])
		if err := a.clients.Delete(uint(*id), *cascade); err != nil {
			return err
		}
		fmt.Printf("✓ Client #%d supprimé\n", *id)
		return nil
	default:
		return subUsage("usage: freelance client {add,list,show,edit,delete}")
	}
}

func clientFlags(fs *flag.FlagSet) *services.ClientInput {
	in := &services.ClientInput{}
	fs.StringVar(&in.Nom, "nom", "", "raison sociale ou nom")
	fs.StringVar(&in.SIRET, "siret", "", "SIRET (14 chiffres)")
	fs.StringVar(&in.Adresse, "adresse", "", "adresse")
	fs.StringVar(&in.CodePostal, "cp", "", "code postal")
	fs.StringVar(&in.Ville, "ville", "", "ville")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Telephone, "tel", "", "téléphone")
	fs.StringVar(&in.ContactNom, "contact", "", "nom du contact")
	return in
}
