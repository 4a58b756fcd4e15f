package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/freelance-manager/internal/models"
)

var numberPrefixes = map[string]string{
	models.DocDevis:   "DEVIS",
	models.DocFacture: "FACT",
	models.DocContrat: "CONT",
}

// FormatNumero renders the canonical document number, e.g. DEVIS-2024-001.
func FormatNumero(docType string, annee, seq int) string {
	prefix, ok := numberPrefixes[docType]
	if !ok {
		prefix = strings.ToUpper(docType)
	}
	return fmt.Sprintf("%s-%d-%03d", prefix, annee, seq)
}

// NumberingService hands out sequential, year-scoped document numbers.
// One Compteur row exists per (type, year); the row only ever grows, so a
// number is never reissued even after the owning document is deleted.
type NumberingService struct {
	mu sync.Mutex
}

func NewNumberingService() *NumberingService { return &NumberingService{} }

// Next reserves the next sequence number for (docType, annee) and returns it
// along with the formatted numero. It must be called inside the transaction
// that persists the new document: the counter update and the document insert
// then commit together, so a crash can at worst leave a gap, never a reuse.
//
// The mutex serializes assignment within the process; the FOR UPDATE clause
// covers concurrent processes on backends that support row locking (sqlite
// serializes writers on its own).
func (n *NumberingService) Next(tx *gorm.DB, docType string, annee int) (int, string, error) {
	if _, ok := numberPrefixes[docType]; !ok {
		return 0, "", fmt.Errorf("unknown document type %q", docType)
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	var c models.Compteur
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("type = ? AND annee = ?", docType, annee).
		First(&c).Error
	switch {
	case err == nil:
		c.Compteur++
		if err := tx.Model(&models.Compteur{}).
			Where("type = ? AND annee = ?", docType, annee).
			Update("compteur", c.Compteur).Error; err != nil {
			return 0, "", fmt.Errorf("increment counter %s/%d: %w", docType, annee, err)
		}
	case err == gorm.ErrRecordNotFound:
		// Premier document de ce type pour l'année.
		c = models.Compteur{Type: docType, Annee: annee, Compteur: 1}
		if err := tx.Create(&c).Error; err != nil {
			return 0, "", fmt.Errorf("create counter %s/%d: %w", docType, annee, err)
		}
	default:
		return 0, "", fmt.Errorf("read counter %s/%d: %w", docType, annee, err)
	}
	return c.Compteur, FormatNumero(docType, annee, c.Compteur), nil
}

// isUniqueViolation reports whether err is a unique-constraint failure, in
// either the sqlite or the postgres driver's wording. Hitting one on a numero
// means the counter no longer matches the documents on disk (a reset against
// a non-empty table); the insert aborts and nothing partial is committed.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// Current returns the last assigned sequence for (docType, annee), 0 if none.
func (n *NumberingService) Current(db *gorm.DB, docType string, annee int) (int, error) {
	var c models.Compteur
	err := db.Where("type = ? AND annee = ?", docType, annee).First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.Compteur, nil
}
