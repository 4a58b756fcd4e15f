package models

import "time"

// Client entity
type Client struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Nom        string    `gorm:"not null;index" json:"nom"` // Raison sociale ou nom
	SIRET      string    `gorm:"index" json:"siret"`
	Adresse    string    `json:"adresse"`
	CodePostal string    `json:"code_postal"`
	Ville      string    `json:"ville"`
	Email      string    `json:"email"`
	Telephone  string    `json:"telephone"`
	ContactNom string    `json:"contact_nom"` // Nom du contact principal
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
