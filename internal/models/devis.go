package models

import "time"

// Devis statuses form a closed set; transitions are enforced in services.
type DevisStatut string

const (
	DevisDraft    DevisStatut = "draft"
	DevisSent     DevisStatut = "sent"
	DevisAccepted DevisStatut = "accepted"
	DevisRefused  DevisStatut = "refused"
	DevisExpired  DevisStatut = "expired"
)

// Tarification: TJM x jours ou montant forfaitaire.
const (
	TarifTJM     = "tjm"
	TarifForfait = "forfait"
)

// Devis (quote) entity
type Devis struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Numero        string      `gorm:"uniqueIndex;not null" json:"numero"` // DEVIS-{annee}-{seq}
	ClientID      uint        `gorm:"not null;index" json:"client_id"`
	Client        Client      `gorm:"foreignKey:ClientID" json:"-"`
	Description   string      `json:"description"`
	TJM           float64     `json:"tjm"`
	Jours         float64     `json:"jours"`
	TotalHT       float64     `json:"total_ht"`
	TotalTTC      float64     `json:"total_ttc"`
	Statut        DevisStatut `gorm:"not null;default:'draft'" json:"statut"`
	ValiditeJours int         `gorm:"default:30" json:"validite_jours"`
	TypeTarif     string      `gorm:"default:'tjm'" json:"type_tarif"`
	Acompte       bool        `gorm:"default:true" json:"acompte"` // acompte de 30% demandé (false pour régie)
	Notes         string      `json:"notes"`
	DateCreation  time.Time   `json:"date_creation"`
	DateEnvoi     *time.Time  `json:"date_envoi,omitempty"`
	// Un devis accepté se convertit en exactement une facture.
	ConvertedToFactureID uint      `json:"converted_to_facture_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Expire reports whether the devis validity window has elapsed at ref time.
func (d *Devis) Expire(ref time.Time) bool {
	if d.ValiditeJours <= 0 {
		return false
	}
	return ref.After(d.DateCreation.AddDate(0, 0, d.ValiditeJours))
}
