package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
	"github.com/diewo77/freelance-manager/internal/validation"
)

// ClientService owns client CRUD and the deletion policy.
type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService { return &ClientService{DB: db} }

type ClientInput struct {
	Nom        string `json:"nom"`
	SIRET      string `json:"siret"`
	Adresse    string `json:"adresse"`
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	ContactNom string `json:"contact_nom"`
}

func (in ClientInput) validate() error {
	v := validation.Violations{}
	validation.Required("nom", in.Nom, v)
	validation.SIRET("siret", in.SIRET, v)
	return Violated(v)
}

func (s *ClientService) Create(in ClientInput) (*models.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c := models.Client{
		Nom:        in.Nom,
		SIRET:      in.SIRET,
		Adresse:    in.Adresse,
		CodePostal: in.CodePostal,
		Ville:      in.Ville,
		Email:      in.Email,
		Telephone:  in.Telephone,
		ContactNom: in.ContactNom,
	}
	if err := s.DB.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &c, nil
}

func (s *ClientService) Get(id uint) (*models.Client, error) {
	var c models.Client
	if err := s.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	if err := s.DB.Order("nom").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Update applies the non-empty fields of in to the client.
func (s *ClientService) Update(id uint, in ClientInput) (*models.Client, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.SIRET != "" {
		v := validation.Violations{}
		validation.SIRET("siret", in.SIRET, v)
		if err := Violated(v); err != nil {
			return nil, err
		}
	}
	updates := map[string]any{}
	if in.Nom != "" {
		updates["nom"] = in.Nom
	}
	if in.SIRET != "" {
		updates["siret"] = in.SIRET
	}
	if in.Adresse != "" {
		updates["adresse"] = in.Adresse
	}
	if in.CodePostal != "" {
		updates["code_postal"] = in.CodePostal
	}
	if in.Ville != "" {
		updates["ville"] = in.Ville
	}
	if in.Email != "" {
		updates["email"] = in.Email
	}
	if in.Telephone != "" {
		updates["telephone"] = in.Telephone
	}
	if in.ContactNom != "" {
		updates["contact_nom"] = in.ContactNom
	}
	if len(updates) == 0 {
		return c, nil
	}
	if err := s.DB.Model(c).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update client %d: %w", id, err)
	}
	return s.Get(id)
}

// Delete removes a client. By default deletion is blocked while any devis,
// facture or contrat references the client; cascade removes those documents
// too (their numbers stay burned in the counters either way).
func (s *ClientService) Delete(id uint, cascade bool) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var refs int64
		for _, m := range []any{&models.Devis{}, &models.Facture{}, &models.Contrat{}} {
			var n int64
			if err := tx.Model(m).Where("client_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			refs += n
		}
		if refs > 0 {
			if !cascade {
				return fmt.Errorf("client %d has %d documents: %w", id, refs, ErrClientReferenced)
			}
			if err := tx.Where("client_id = ?", id).Delete(&models.Devis{}).Error; err != nil {
				return err
			}
			if err := tx.Where("client_id = ?", id).Delete(&models.Facture{}).Error; err != nil {
				return err
			}
			if err := tx.Where("client_id = ?", id).Delete(&models.Contrat{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Client{}, id).Error
	})
}
