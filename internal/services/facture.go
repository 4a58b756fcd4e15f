package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/validation"
)

type FactureService struct {
	DB        *gorm.DB
	Numbering *NumberingService
	// DelaiPaiement is the payment term in days used to compute due dates.
	DelaiPaiement int
}

func NewFactureService(db *gorm.DB, num *NumberingService, delaiPaiement int) *FactureService {
	if delaiPaiement <= 0 {
		delaiPaiement = 30
	}
	return &FactureService{DB: db, Numbering: num, DelaiPaiement: delaiPaiement}
}

type FactureInput struct {
	ClientID         uint       `json:"client_id"`
	Description      string     `json:"description"`
	TJM              float64    `json:"tjm"`
	JoursEffectifs   float64    `json:"jours_effectifs"`
	TypeTarif        string     `json:"type_tarif"`
	MontantForfait   float64    `json:"montant_forfait"`
	DateDebutMission *time.Time `json:"date_debut_mission"`
	DateFinMission   *time.Time `json:"date_fin_mission"`
	Notes            string     `json:"notes"`
}

// dueDate implements the "30 jours fin de mois" rule: first day of the next
// month plus (delai - 1) days.
func dueDate(from time.Time, delai int) time.Time {
	firstOfNext := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, delai-1)
}

func (s *FactureService) Create(in FactureInput) (*models.Facture, error) {
	return s.create(in, nil)
}

// CreateFromDevis converts an accepted devis into its one facture. Client,
// description, tjm and pricing mode default from the devis; jours effectifs
// is the actual figure and may differ from what was quoted.
func (s *FactureService) CreateFromDevis(devisID uint, joursEffectifs float64, in FactureInput) (*models.Facture, error) {
	var d models.Devis
	if err := s.DB.First(&d, devisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("devis %d: %w", devisID, ErrNotFound)
		}
		return nil, err
	}
	if d.Statut != models.DevisAccepted {
		return nil, fmt.Errorf("devis %s is %s, not accepted: %w", d.Numero, d.Statut, ErrInvalidTransition)
	}
	if d.ConvertedToFactureID != 0 {
		return nil, fmt.Errorf("devis %s already converted to facture %d: %w", d.Numero, d.ConvertedToFactureID, ErrInvalidTransition)
	}
	in.ClientID = d.ClientID
	if in.Description == "" {
		in.Description = d.Description
	}
	in.TypeTarif = d.TypeTarif
	if d.TypeTarif == models.TarifForfait {
		if in.MontantForfait <= 0 {
			in.MontantForfait = d.TotalHT
		}
	} else {
		in.TJM = d.TJM
		in.JoursEffectifs = joursEffectifs
	}
	return s.create(in, &d)
}

func (s *FactureService) create(in FactureInput, fromDevis *models.Devis) (*models.Facture, error) {
	if in.TypeTarif == "" {
		in.TypeTarif = models.TarifTJM
	}
	v := validation.Violations{}
	validation.OneOf("type_tarif", in.TypeTarif, []string{models.TarifTJM, models.TarifForfait}, v)
	if in.TypeTarif == models.TarifForfait {
		validation.PositiveFloat("montant_forfait", in.MontantForfait, v)
	} else {
		validation.PositiveFloat("tjm", in.TJM, v)
		validation.PositiveFloat("jours_effectifs", in.JoursEffectifs, v)
	}
	validation.DateRange("dates_mission", in.DateDebutMission, in.DateFinMission, v)
	if err := Violated(v); err != nil {
		return nil, err
	}

	var client models.Client
	if err := s.DB.First(&client, in.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %d: %w", in.ClientID, ErrNotFound)
		}
		return nil, err
	}

	now := time.Now()
	f := models.Facture{
		ClientID:         in.ClientID,
		Description:      in.Description,
		TypeTarif:        in.TypeTarif,
		Statut:           models.FactureUnpaid,
		DateCreation:     now,
		DateEcheance:     dueDate(now, s.DelaiPaiement),
		DateDebutMission: in.DateDebutMission,
		DateFinMission:   in.DateFinMission,
		Notes:            in.Notes,
	}
	if in.TypeTarif == models.TarifForfait {
		f.TotalHT = in.MontantForfait
	} else {
		f.TJM = in.TJM
		f.JoursEffectifs = in.JoursEffectifs
		f.TotalHT = in.TJM * in.JoursEffectifs
	}
	f.TotalTTC = f.TotalHT // micro-entreprise: TVA non applicable
	if fromDevis != nil {
		f.DevisID = &fromDevis.ID
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		_, numero, err := s.Numbering.Next(tx, models.DocFacture, now.Year())
		if err != nil {
			return err
		}
		f.Numero = numero
		if err := tx.Create(&f).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("facture %s: %w", numero, ErrDuplicateNumber)
			}
			return fmt.Errorf("create facture %s: %w", numero, err)
		}
		if fromDevis != nil {
			// One devis, one facture: record the link inside the same transaction.
			if err := tx.Model(fromDevis).Update("converted_to_facture_id", f.ID).Error; err != nil {
				return fmt.Errorf("link devis %s to facture %s: %w", fromDevis.Numero, numero, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FactureService) Get(id uint) (*models.Facture, error) {
	var f models.Facture
	if err := s.DB.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("facture %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &f, nil
}

func (s *FactureService) GetByNumero(numero string) (*models.Facture, error) {
	var f models.Facture
	if err := s.DB.Where("numero = ?", numero).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("facture %s: %w", numero, ErrNotFound)
		}
		return nil, err
	}
	return &f, nil
}

// List returns factures newest first. statut filters on the effective status,
// so "overdue" matches unpaid factures past their due date.
func (s *FactureService) List(clientID uint, statut models.FactureStatut, annee int) ([]models.Facture, error) {
	q := s.DB.Order("date_creation DESC, id DESC")
	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}
	if annee != 0 {
		q = q.Where("date_creation >= ? AND date_creation < ?",
			time.Date(annee, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(annee+1, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	var list []models.Facture
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	if statut == "" {
		return list, nil
	}
	now := time.Now()
	filtered := list[:0]
	for _, f := range list {
		if f.EffectiveStatut(now) == statut {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

// MarkPaid transitions unpaid -> paid. The payment date must not precede the
// invoice date; a paid facture cannot be paid again.
func (s *FactureService) MarkPaid(id uint, datePaiement time.Time) (*models.Facture, error) {
	f, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if f.Statut == models.FacturePaid {
		return nil, fmt.Errorf("facture %s already paid: %w", f.Numero, ErrInvalidTransition)
	}
	if datePaiement.Before(f.DateCreation.Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("facture %s: payment date %s precedes invoice date: %w",
			f.Numero, datePaiement.Format("2006-01-02"), ErrInvalidTransition)
	}
	updates := map[string]any{"statut": models.FacturePaid, "date_paiement": &datePaiement}
	if err := s.DB.Model(f).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("mark facture %d paid: %w", id, err)
	}
	return s.Get(id)
}

// RevertPayment is the explicit reversal command: paid -> unpaid, clearing
// the payment date. Any other paid -> * change stays rejected.
func (s *FactureService) RevertPayment(id uint) (*models.Facture, error) {
	f, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if f.Statut != models.FacturePaid {
		return nil, fmt.Errorf("facture %s is %s, nothing to revert: %w", f.Numero, f.Statut, ErrInvalidTransition)
	}
	updates := map[string]any{"statut": models.FactureUnpaid, "date_paiement": nil}
	if err := s.DB.Model(f).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("revert facture %d payment: %w", id, err)
	}
	return s.Get(id)
}

func (s *FactureService) Delete(id uint) error {
	f, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		// Unlink the originating devis so it could be re-invoiced if needed.
		if f.DevisID != nil {
			if err := tx.Model(&models.Devis{}).Where("id = ?", *f.DevisID).
				Update("converted_to_facture_id", 0).Error; err != nil {
				return err
			}
		}
		return tx.Delete(f).Error
	})
}
