package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/validation"
)

type ContratService struct {
	DB        *gorm.DB
	Numbering *NumberingService
}

func NewContratService(db *gorm.DB, num *NumberingService) *ContratService {
	return &ContratService{DB: db, Numbering: num}
}

type ContratInput struct {
	ClientID       uint       `json:"client_id"`
	TypeContrat    string     `json:"type_contrat"`
	Objet          string     `json:"objet"`
	TJM            float64    `json:"tjm"`
	DureeJours     int        `json:"duree_jours"`
	MontantForfait float64    `json:"montant_forfait"`
	DateDebut      *time.Time `json:"date_debut"`
	DateFin        *time.Time `json:"date_fin"`
}

// Create numbers and persists a contrat. Régie and mission price by TJM over
// a duration; forfait carries a fixed amount.
func (s *ContratService) Create(in ContratInput) (*models.Contrat, error) {
	v := validation.Violations{}
	validation.OneOf("type_contrat", in.TypeContrat,
		[]string{models.ContratRegie, models.ContratForfait, models.ContratMission}, v)
	switch in.TypeContrat {
	case models.ContratForfait:
		validation.PositiveFloat("montant_forfait", in.MontantForfait, v)
	case models.ContratRegie, models.ContratMission:
		validation.PositiveFloat("tjm", in.TJM, v)
	}
	validation.DateRange("dates", in.DateDebut, in.DateFin, v)
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
	c := models.Contrat{
		ClientID:       in.ClientID,
		TypeContrat:    in.TypeContrat,
		Objet:          in.Objet,
		TJM:            in.TJM,
		DureeJours:     in.DureeJours,
		MontantForfait: in.MontantForfait,
		DateDebut:      in.DateDebut,
		DateFin:        in.DateFin,
		Statut:         "brouillon",
		DateCreation:   now,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		_, numero, err := s.Numbering.Next(tx, models.DocContrat, now.Year())
		if err != nil {
			return err
		}
		c.Numero = numero
		if err := tx.Create(&c).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("contrat %s: %w", numero, ErrDuplicateNumber)
			}
			return fmt.Errorf("create contrat %s: %w", numero, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContratService) Get(id uint) (*models.Contrat, error) {
	var c models.Contrat
	if err := s.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contrat %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (s *ContratService) List(clientID uint, typeContrat string) ([]models.Contrat, error) {
	q := s.DB.Order("date_creation DESC, id DESC")
	if clientID != 0 {
		q = q.Where("client_id = ?", clientID)
	}
	if typeContrat != "" {
		q = q.Where("type_contrat = ?", typeContrat)
	}
	var list []models.Contrat
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SetFichierPath records where the rendered document landed.
func (s *ContratService) SetFichierPath(id uint, path string) error {
	return s.DB.Model(&models.Contrat{}).Where("id = ?", id).Update("fichier_path", path).Error
}

func (s *ContratService) Delete(id uint) error {
	c, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(c).Error
}
