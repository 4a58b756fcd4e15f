package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
)

// AutoMigrate creates or adjusts the schema from the models. Used as the
// development fallback when SQL migrations are not requested, and by tests.
func AutoMigrate(conn *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.Client{}, &models.Devis{}, &models.Facture{}, &models.Contrat{}, &models.Compteur{},
	}
	for _, m := range modelsToMigrate {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
