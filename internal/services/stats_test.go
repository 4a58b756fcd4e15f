package services

import (
	"testing"
	"time"

	"github.com/diewo77/freelance-manager/internal/models"
)

func TestStatsRevenueByPaymentDate(t *testing.T) {
	db := setupTestDB(t)
	client := seedClient(t, db)
	svc := NewStatsService(db, 77700)

	mkPaid := func(numero string, totalHT float64, paidAt time.Time) {
		t.Helper()
		f := models.Facture{
			Numero:       numero,
			ClientID:     client.ID,
			TotalHT:      totalHT,
			TotalTTC:     totalHT,
			Statut:       models.FacturePaid,
			DateCreation: paidAt.AddDate(0, 0, -15),
			DateEcheance: paidAt.AddDate(0, 0, 15),
			DatePaiement: &paidAt,
		}
		if err := db.Create(&f).Error; err != nil {
			t.Fatalf("seed facture: %v", err)
		}
	}

	mkPaid("FACT-2024-001", 1500, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	mkPaid("FACT-2024-002", 3000, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
	mkPaid("FACT-2024-003", 2000, time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC))
	// Facture 2024 payée en janvier 2025: compte pour 2025.
	mkPaid("FACT-2024-004", 900, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	st, err := svc.Compute(2024)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if st.TotalRevenue != 6500 {
		t.Errorf("revenue 2024 = %v, want 6500", st.TotalRevenue)
	}
	if st.MonthlyBreakdown[1] != 4500 {
		t.Errorf("février = %v, want 4500", st.MonthlyBreakdown[1])
	}
	if st.MonthlyBreakdown[10] != 2000 {
		t.Errorf("novembre = %v, want 2000", st.MonthlyBreakdown[10])
	}
	wantRatio := 6500.0 / 77700.0
	if st.ThresholdRatio != wantRatio {
		t.Errorf("threshold ratio = %v, want %v", st.ThresholdRatio, wantRatio)
	}

	st25, err := svc.Compute(2025)
	if err != nil {
		t.Fatalf("compute 2025: %v", err)
	}
	if st25.TotalRevenue != 900 {
		t.Errorf("revenue 2025 = %v, want 900", st25.TotalRevenue)
	}
}

func TestStatsUnpaidAndOverdue(t *testing.T) {
	db := setupTestDB(t)
	client := seedClient(t, db)
	svc := NewStatsService(db, 77700)

	now := time.Now()
	mk := func(numero string, totalHT float64, echeance time.Time) {
		t.Helper()
		f := models.Facture{
			Numero:       numero,
			ClientID:     client.ID,
			TotalHT:      totalHT,
			Statut:       models.FactureUnpaid,
			DateCreation: now.AddDate(0, 0, -40),
			DateEcheance: echeance,
		}
		if err := db.Create(&f).Error; err != nil {
			t.Fatalf("seed facture: %v", err)
		}
	}
	mk("FACT-2024-010", 1000, now.AddDate(0, 0, 10))
	mk("FACT-2024-011", 2500, now.AddDate(0, 0, -5))

	st, err := svc.Compute(now.Year())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if st.UnpaidTotal != 3500 {
		t.Errorf("unpaid total = %v, want 3500", st.UnpaidTotal)
	}
	if len(st.OverdueList) != 1 || st.OverdueList[0].Numero != "FACT-2024-011" {
		t.Errorf("overdue list: %#v", st.OverdueList)
	}
}

func TestStatsCounts(t *testing.T) {
	db := setupTestDB(t)
	c1 := seedClient(t, db)
	c2 := seedClient(t, db)
	num := NewNumberingService()
	devisSvc := NewDevisService(db, num)
	factureSvc := NewFactureService(db, num, 30)
	svc := NewStatsService(db, 77700)

	if _, err := factureSvc.Create(FactureInput{ClientID: c1.ID, TJM: 500, JoursEffectifs: 1}); err != nil {
		t.Fatalf("facture: %v", err)
	}
	d, err := devisSvc.Create(DevisInput{ClientID: c2.ID, TJM: 300, Jours: 1})
	if err != nil {
		t.Fatalf("devis: %v", err)
	}
	if _, err := devisSvc.UpdateStatut(d.ID, models.DevisSent); err != nil {
		t.Fatalf("statut: %v", err)
	}

	st, err := svc.Compute(time.Now().Year())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// c2 n'a pas de facture: un seul client actif.
	if st.ClientsActifs != 1 {
		t.Errorf("clients actifs = %d, want 1", st.ClientsActifs)
	}
	if st.DevisEnAttente != 1 {
		t.Errorf("devis en attente = %d, want 1", st.DevisEnAttente)
	}
}
