package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/services"
)

func (a *app) runFacture(args []string) error {
	if len(args) < 1 {
		return subUsage("usage: freelance facture {create,list,statut,pdf,delete}")
	}
	switch args[0] {
	case "create":
		fs := flag.NewFlagSet("facture create", flag.ExitOnError)
		clientID := fs.Uint("client", 0, "id du client")
		description := fs.String("description", "", "description de la prestation")
		tjm := fs.Float64("tjm", 0, "taux journalier moyen")
		jours := fs.Float64("jours", 0, "jours effectifs")
		forfait := fs.Float64("forfait", 0, "montant forfaitaire (active le mode forfait)")
		debut := fs.String("debut", "", "début de mission (AAAA-MM-JJ)")
		fin := fs.String("fin", "", "fin de mission (AAAA-MM-JJ)")
		notes := fs.String("notes", "", "notes")
		_ = fs.Parse(args[1:])
		in := services.FactureInput{
			ClientID:       uint(*clientID),
			Description:    *description,
			TJM:            *tjm,
			JoursEffectifs: *jours,
			Notes:          *notes,
		}
		if *forfait > 0 {
			in.TypeTarif = models.TarifForfait
			in.MontantForfait = *forfait
		}
		var err error
		if in.DateDebutMission, err = parseDateFlag(*debut); err != nil {
			return err
		}
		if in.DateFinMission, err = parseDateFlag(*fin); err != nil {
			return err
		}
		f, err := a.factures.Create(in)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Facture %s créée (total HT %.2f €, échéance %s)\n",
			f.Numero, f.TotalHT, f.DateEcheance.Format("2006-01-02"))
		return nil
	case "list":
		fs := flag.NewFlagSet("facture list", flag.ExitOnError)
		clientID := fs.Uint("client", 0, "filtrer par client")
		statut := fs.String("statut", "", "filtrer par statut (unpaid, paid, overdue)")
		annee := fs.Int("annee", 0, "filtrer par année")
		_ = fs.Parse(args[1:])
		list, err := a.factures.List(uint(*clientID), models.FactureStatut(*statut), *annee)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, f := range list {
			fmt.Printf("%-16s client=%-4d %-8s %10.2f €  échéance %s\n",
				f.Numero, f.ClientID, f.EffectiveStatut(now), f.TotalHT, f.DateEcheance.Format("2006-01-02"))
		}
		fmt.Printf("%d facture(s)\n", len(list))
		return nil
	case "statut":
		fs := flag.NewFlagSet("facture statut", flag.ExitOnError)
		id := fs.Uint("id", 0, "id de la facture")
		statut := fs.String("statut", "", "paid ou unpaid (unpaid = annulation explicite du paiement)")
		datePaiement := fs.String("date", "", "date de paiement (AAAA-MM-JJ, défaut aujourd'hui)")
		_ = fs.Parse(args[1:])
		switch models.FactureStatut(*statut) {
		case models.FacturePaid:
			dp := time.Now()
			if *datePaiement != "" {
				t, err := time.Parse("2006-01-02", *datePaiement)
				if err != nil {
					return fmt.Errorf("date invalide %q", *datePaiement)
				}
				dp = t
			}
			f, err := a.factures.MarkPaid(uint(*id), dp)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Facture %s payée le %s\n", f.Numero, f.DatePaiement.Format("2006-01-02"))
		case models.FactureUnpaid:
			f, err := a.factures.RevertPayment(uint(*id))
			if err != nil {
				return err
			}
			fmt.Printf("✓ Paiement annulé, facture %s repasse à unpaid\n", f.Numero)
		default:
			return subUsage("statut attendu: paid ou unpaid")
		}
		return nil
	case "pdf":
		fs := flag.NewFlagSet("facture pdf", flag.ExitOnError)
		id := fs.Uint("id", 0, "id de la facture")
		_ = fs.Parse(args[1:])
		f, err := a.factures.Get(uint(*id))
		if err != nil {
			return err
		}
		c, err := a.clients.Get(f.ClientID)
		if err != nil {
			return err
		}
		path, err := a.renderer.Facture(f, c)
		if err != nil {
			return err
		}
		fmt.Printf("✓ PDF généré: %s\n", path)
		return nil
	case "delete":
		fs := flag.NewFlagSet("facture delete", flag.ExitOnError)
		id := fs.Uint("id", 0, "id de la facture")
		_ = fs.Parse(args[1:])
		if err := a.factures.Delete(uint(*id)); err != nil {
			return err
		}
		fmt.Printf("✓ Facture #%d supprimée (son numéro reste réservé)\n", *id)
		return nil
	default:
		return subUsage("usage: freelance facture {create,list,statut,pdf,delete}")
	}
}

func parseDateFlag(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("date invalide %q (format AAAA-MM-JJ)", v)
	}
	return &t, nil
}
