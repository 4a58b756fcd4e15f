// Package export flattens entities into tabular views for CSV and Excel.
// Column order is fixed and documented by the header slices below so exports
// stay diffable across runs.
package export

import (
	"strconv"
	"time"

	"github.com/diewo77/freelance-manager/internal/models"
)

var (
	ClientHeaders  = []string{"id", "nom", "siret", "adresse", "code_postal", "ville", "email", "telephone", "contact_nom"}
	DevisHeaders   = []string{"numero", "client_id", "description", "tjm", "jours", "total_ht", "total_ttc", "statut", "type_tarif", "date_creation", "date_envoi"}
	FactureHeaders = []string{"numero", "devis_id", "client_id", "description", "tjm", "jours_effectifs", "total_ht", "total_ttc", "statut", "type_tarif", "date_creation", "date_echeance", "date_paiement"}
	ContratHeaders = []string{"numero", "client_id", "type_contrat", "objet", "tjm", "duree_jours", "montant_forfait", "date_debut", "date_fin", "statut"}
)

func fdate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fdatep(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fdate(*t)
}

func ffloat(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func ClientRow(c models.Client) []string {
	return []string{
		strconv.FormatUint(uint64(c.ID), 10), c.Nom, c.SIRET, c.Adresse,
		c.CodePostal, c.Ville, c.Email, c.Telephone, c.ContactNom,
	}
}

func DevisRow(d models.Devis) []string {
	return []string{
		d.Numero, strconv.FormatUint(uint64(d.ClientID), 10), d.Description,
		ffloat(d.TJM), strconv.FormatFloat(d.Jours, 'f', -1, 64),
		ffloat(d.TotalHT), ffloat(d.TotalTTC), string(d.Statut), d.TypeTarif,
		fdate(d.DateCreation), fdatep(d.DateEnvoi),
	}
}

func FactureRow(f models.Facture) []string {
	devisID := ""
	if f.DevisID != nil {
		devisID = strconv.FormatUint(uint64(*f.DevisID), 10)
	}
	return []string{
		f.Numero, devisID, strconv.FormatUint(uint64(f.ClientID), 10), f.Description,
		ffloat(f.TJM), strconv.FormatFloat(f.JoursEffectifs, 'f', -1, 64),
		ffloat(f.TotalHT), ffloat(f.TotalTTC), string(f.Statut), f.TypeTarif,
		fdate(f.DateCreation), fdate(f.DateEcheance), fdatep(f.DatePaiement),
	}
}

func ContratRow(c models.Contrat) []string {
	return []string{
		c.Numero, strconv.FormatUint(uint64(c.ClientID), 10), c.TypeContrat, c.Objet,
		ffloat(c.TJM), strconv.Itoa(c.DureeJours), ffloat(c.MontantForfait),
		fdatep(c.DateDebut), fdatep(c.DateFin), c.Statut,
	}
}
