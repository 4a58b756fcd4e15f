package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
)

type StatsService struct {
	DB *gorm.DB
	// SeuilCA is the micro-entreprise revenue cap used for the display alert.
	SeuilCA float64
}

func NewStatsService(db *gorm.DB, seuilCA float64) *StatsService {
	if seuilCA <= 0 {
		seuilCA = 77700
	}
	return &StatsService{DB: db, SeuilCA: seuilCA}
}

// Stats aggregates one calendar year of invoicing activity. Revenue counts
// paid factures by payment date; the threshold ratio is informational only,
// nothing ever blocks invoicing past the cap.
type Stats struct {
	Annee            int              `json:"annee"`
	TotalRevenue     float64          `json:"total_revenue"`
	MonthlyBreakdown [12]float64      `json:"monthly_breakdown"`
	UnpaidTotal      float64          `json:"unpaid_total"`
	OverdueList      []models.Facture `json:"overdue_list"`
	ThresholdRatio   float64          `json:"threshold_ratio"`
	ClientsActifs    int              `json:"clients_actifs"`
	DevisEnAttente   int              `json:"devis_en_attente"`
}

func (s *StatsService) Compute(annee int) (*Stats, error) {
	if annee == 0 {
		annee = time.Now().Year()
	}
	st := &Stats{Annee: annee}

	yearStart := time.Date(annee, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var paid []models.Facture
	if err := s.DB.Where("statut = ? AND date_paiement >= ? AND date_paiement < ?",
		models.FacturePaid, yearStart, yearEnd).Find(&paid).Error; err != nil {
		return nil, err
	}
	for _, f := range paid {
		st.TotalRevenue += f.TotalHT
		if f.DatePaiement != nil {
			st.MonthlyBreakdown[int(f.DatePaiement.Month())-1] += f.TotalHT
		}
	}
	st.ThresholdRatio = st.TotalRevenue / s.SeuilCA

	var unpaid []models.Facture
	if err := s.DB.Where("statut = ?", models.FactureUnpaid).
		Order("date_echeance").Find(&unpaid).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	for _, f := range unpaid {
		st.UnpaidTotal += f.TotalHT
		if f.EffectiveStatut(now) == models.FactureOverdue {
			st.OverdueList = append(st.OverdueList, f)
		}
	}

	// Clients actifs: au moins une facture sur l'année.
	var actifs int64
	if err := s.DB.Model(&models.Facture{}).
		Where("date_creation >= ? AND date_creation < ?", yearStart, yearEnd).
		Distinct("client_id").Count(&actifs).Error; err != nil {
		return nil, err
	}
	st.ClientsActifs = int(actifs)

	var enAttente int64
	if err := s.DB.Model(&models.Devis{}).
		Where("statut IN ?", []models.DevisStatut{models.DevisDraft, models.DevisSent}).
		Count(&enAttente).Error; err != nil {
		return nil, err
	}
	st.DevisEnAttente = int(enAttente)

	return st, nil
}
