package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
)

// ResetService wipes counters and/or entities. Zeroing counters makes numbers
// reusable, which breaks the legal chronological sequencing of issued
// documents: it exists for tests and fresh installs only.
type ResetService struct {
	DB *gorm.DB
}

func NewResetService(db *gorm.DB) *ResetService { return &ResetService{DB: db} }

// ResetCounters deletes all counter rows. The next document of each type
// starts again at 001.
func (s *ResetService) ResetCounters() error {
	log.Printf("[RESET] compteurs remis à zéro: la numérotation repart à 001 (réservé aux tests)")
	if err := s.DB.Where("1 = 1").Delete(&models.Compteur{}).Error; err != nil {
		return fmt.Errorf("reset counters: %w", err)
	}
	return nil
}

// ResetAll erases every entity and every counter.
func (s *ResetService) ResetAll() error {
	log.Printf("[RESET] suppression de toutes les données (clients, devis, factures, contrats, compteurs)")
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&models.Facture{}, &models.Devis{}, &models.Contrat{}, &models.Client{}, &models.Compteur{}} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("reset all: %w", err)
			}
		}
		return nil
	})
}
