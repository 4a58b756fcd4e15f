package models

// Document types owning a numbering sequence.
const (
	DocDevis   = "devis"
	DocFacture = "facture"
	DocContrat = "contrat"
)

// Compteur holds the high-water mark of assigned sequence numbers for one
// (document type, year) pair. Rows are only ever incremented, never rolled
// back: a deleted document keeps its number forever (numérotation
// chronologique obligatoire).
type Compteur struct {
	Type     string `gorm:"primaryKey;size:16"`
	Annee    int    `gorm:"primaryKey"`
	Compteur int    `gorm:"not null"`
}
