package models

import "time"

// Types de contrat: régie (temps passé), forfait (prix fixe), mission (engagement court).
const (
	ContratRegie   = "regie"
	ContratForfait = "forfait"
	ContratMission = "mission"
)

// Contrat entity. Contracts are generated documents without a payment
// lifecycle; Statut records where the paper stands (brouillon, envoyé, signé).
type Contrat struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Numero         string     `gorm:"uniqueIndex;not null" json:"numero"` // CONT-{annee}-{seq}
	ClientID       uint       `gorm:"not null;index" json:"client_id"`
	Client         Client     `gorm:"foreignKey:ClientID" json:"-"`
	TypeContrat    string     `gorm:"not null" json:"type_contrat"`
	Objet          string     `json:"objet"`
	TJM            float64    `json:"tjm"`
	DureeJours     int        `json:"duree_jours,omitempty"`
	MontantForfait float64    `json:"montant_forfait,omitempty"`
	DateDebut      *time.Time `json:"date_debut,omitempty"`
	DateFin        *time.Time `json:"date_fin,omitempty"`
	Statut         string     `gorm:"default:'brouillon'" json:"statut"`
	FichierPath    string     `json:"fichier_path"` // chemin du .docx généré
	DateCreation   time.Time  `json:"date_creation"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
