package models

import "time"

type FactureStatut string

const (
	FactureUnpaid FactureStatut = "unpaid"
	FacturePaid   FactureStatut = "paid"
	// FactureOverdue is derived from the due date on read and never stored.
	FactureOverdue FactureStatut = "overdue"
)

// Facture (invoice) entity
type Facture struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Numero           string        `gorm:"uniqueIndex;not null" json:"numero"` // FACT-{annee}-{seq}
	DevisID          *uint         `gorm:"index" json:"devis_id,omitempty"`    // devis d'origine, optionnel
	ClientID         uint          `gorm:"not null;index" json:"client_id"`
	Client           Client        `gorm:"foreignKey:ClientID" json:"-"`
	Description      string        `json:"description"`
	TJM              float64       `json:"tjm"`
	JoursEffectifs   float64       `json:"jours_effectifs"` // jours réellement travaillés, peut différer du devis
	TotalHT          float64       `json:"total_ht"`
	TotalTTC         float64       `json:"total_ttc"`
	Statut           FactureStatut `gorm:"not null;default:'unpaid'" json:"statut"`
	TypeTarif        string        `gorm:"default:'tjm'" json:"type_tarif"`
	DateCreation     time.Time     `json:"date_creation"`
	DateEnvoi        *time.Time    `json:"date_envoi,omitempty"`
	DateEcheance     time.Time     `json:"date_echeance"`
	DatePaiement     *time.Time    `json:"date_paiement,omitempty"` // renseignée uniquement au passage à paid
	DateDebutMission *time.Time    `json:"date_debut_mission,omitempty"`
	DateFinMission   *time.Time    `json:"date_fin_mission,omitempty"`
	Notes            string        `json:"notes"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// EffectiveStatut returns the stored status with overdue derived on read:
// an unpaid facture past its due date reads as overdue but stays payable.
func (f *Facture) EffectiveStatut(ref time.Time) FactureStatut {
	if f.Statut == FactureUnpaid && !f.DateEcheance.IsZero() && ref.After(f.DateEcheance) {
		return FactureOverdue
	}
	return f.Statut
}
