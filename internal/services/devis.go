package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/validation"
)

// devisTransitions is the closed transition table. Expiry is reachable from
// any non-terminal state via an external time-based trigger.
var devisTransitions = map[models.DevisStatut][]models.DevisStatut{
	models.DevisDraft: {models.DevisSent, models.DevisExpired},
	models.DevisSent:  {models.DevisAccepted, models.DevisRefused, models.DevisExpired},
}

func devisCanTransition(from, to models.DevisStatut) bool {
	for _, t := range devisTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type DevisService struct {
	DB        *gorm.DB
	Numbering *NumberingService
}

func NewDevisService(db *gorm.DB, num *NumberingService) *DevisService {
	return &DevisService{DB: db, Numbering: num}
}

type DevisInput struct {
	ClientID       uint    `json:"client_id"`
	Description    string  `json:"description"`
	TJM            float64 `json:"tjm"`
	Jours          float64 `json:"jours"`
	ValiditeJours  int     `json:"validite_jours"`
	Notes          string  `json:"notes"`
	TypeTarif      string  `json:"type_tarif"`
	MontantForfait float64 `json:"montant_forfait"`
	Acompte        *bool   `json:"acompte"`
}

// Create assigns the next DEVIS number and persists the devis in one
// transaction, so counter and document commit (or abort) together.
func (s *DevisService) Create(in DevisInput) (*models.Devis, error) {
	if in.TypeTarif == "" {
		in.TypeTarif = models.TarifTJM
	}
	v := validation.Violations{}
	validation.OneOf("type_tarif", in.TypeTarif, []string{models.TarifTJM, models.TarifForfait}, v)
	if in.TypeTarif == models.TarifForfait {
		validation.PositiveFloat("montant_forfait", in.MontantForfait, v)
	} else {
		validation.PositiveFloat("tjm", in.TJM, v)
		validation.PositiveFloat("jours", in.Jours, v)
	}
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
	d := models.Devis{
		ClientID:      in.ClientID,
		Description:   in.Description,
		Statut:        models.DevisDraft,
		ValiditeJours: in.ValiditeJours,
		TypeTarif:     in.TypeTarif,
		Acompte:       true,
		Notes:         in.Notes,
		DateCreation:  now,
	}
	if in.Acompte != nil {
		d.Acompte = *in.Acompte
	}
	if d.ValiditeJours <= 0 {
		d.ValiditeJours = 30
	}
	if in.TypeTarif == models.TarifForfait {
		d.TotalHT = in.MontantForfait
	} else {
		d.TJM = in.TJM
		d.Jours = in.Jours
		d.TotalHT = in.TJM * in.Jours
	}
	d.TotalTTC = d.TotalHT // micro-entreprise: TVA non applicable

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		_, numero, err := s.Numbering.Next(tx, models.DocDevis, now.Year())
		if err != nil {
			return err
		}
		d.Numero = numero
		if err := tx.Create(&d).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("devis %s: %w", numero, ErrDuplicateNumber)
			}
			return fmt.Errorf("create devis %s: %w", numero, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DevisService) Get(id uint) (*models.Devis, error) {
	var d models.Devis
	if err := s.DB.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("devis %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &d, nil
}

func (s *DevisService) GetByNumero(numero string) (*models.Devis, error) {
	var d models.Devis
	if err := s.DB.Where("numero = ?", numero).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("devis %s: %w", numero, ErrNotFound)
		}
		return nil, err
	}
	return &d, nil
}

// List returns devis newest first, optionally filtered by client and status.
func (s *DevisService) List(clientID uint, statut models.DevisStatut) ([]models.Devis, error) {
	q := s.DB.Order("date_creation DESC, id DESC")
	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}
	if statut != "" {
		q = q.Where("statut = ?", statut)
	}
	var list []models.Devis
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatut applies one step of the transition table.
func (s *DevisService) UpdateStatut(id uint, to models.DevisStatut) (*models.Devis, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if d.Statut == to {
		return d, nil
	}
	if !devisCanTransition(d.Statut, to) {
		return nil, fmt.Errorf("devis %s: %s -> %s: %w", d.Numero, d.Statut, to, ErrInvalidTransition)
	}
	updates := map[string]any{"statut": to}
	if to == models.DevisSent && d.DateEnvoi == nil {
		now := time.Now()
		updates["date_envoi"] = &now
	}
	if err := s.DB.Model(d).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update devis %d statut: %w", id, err)
	}
	return s.Get(id)
}

// ExpireStale marks draft/sent devis past their validity window as expired.
// Returns the count of devis transitioned.
func (s *DevisService) ExpireStale(ref time.Time) (int, error) {
	var candidates []models.Devis
	err := s.DB.Where("statut IN ?", []models.DevisStatut{models.DevisDraft, models.DevisSent}).Find(&candidates).Error
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range candidates {
		if !candidates[i].Expire(ref) {
			continue
		}
		if err := s.DB.Model(&candidates[i]).Update("statut", models.DevisExpired).Error; err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *DevisService) Delete(id uint) error {
	d, err := s.Get(id)
	if err != nil {
		return err
	}
	// The numero stays burned in the counter; only the row goes.
	return s.DB.Delete(d).Error
}
