package services

import (
	"fmt"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/diewo77/freelance-manager/internal/models"
)

func TestFormatNumero(t *testing.T) {
	cases := []struct {
		docType string
		annee   int
		seq     int
		want    string
	}{
		{models.DocDevis, 2024, 1, "DEVIS-2024-001"},
		{models.DocFacture, 2024, 12, "FACT-2024-012"},
		{models.DocContrat, 2025, 3, "CONT-2025-003"},
		{models.DocFacture, 2024, 1000, "FACT-2024-1000"}, // le padding n'écrête jamais
	}
	for _, c := range cases {
		if got := FormatNumero(c.docType, c.annee, c.seq); got != c.want {
			t.Errorf("FormatNumero(%s, %d, %d) = %q, want %q", c.docType, c.annee, c.seq, got, c.want)
		}
	}
}

func TestNumberingSequential(t *testing.T) {
	db := setupTestDB(t)
	num := NewNumberingService()

	for i := 1; i <= 5; i++ {
		var seq int
		var numero string
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			seq, numero, err = num.Next(tx, models.DocDevis, 2024)
			return err
		})
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq != i {
			t.Fatalf("seq = %d, want %d", seq, i)
		}
		want := fmt.Sprintf("DEVIS-2024-%03d", i)
		if numero != want {
			t.Fatalf("numero = %q, want %q", numero, want)
		}
	}
	cur, err := num.Current(db, models.DocDevis, 2024)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 5 {
		t.Fatalf("current = %d, want 5", cur)
	}
}

func TestNumberingIndependentPerTypeAndYear(t *testing.T) {
	db := setupTestDB(t)
	num := NewNumberingService()

	next := func(docType string, annee int) string {
		t.Helper()
		var numero string
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			_, numero, err = num.Next(tx, docType, annee)
			return err
		})
		if err != nil {
			t.Fatalf("next %s/%d: %v", docType, annee, err)
		}
		return numero
	}

	if got := next(models.DocDevis, 2024); got != "DEVIS-2024-001" {
		t.Fatalf("got %q", got)
	}
	if got := next(models.DocFacture, 2024); got != "FACT-2024-001" {
		t.Fatalf("facture counter not independent: %q", got)
	}
	// Nouvelle année: chaque type repart à 001.
	if got := next(models.DocDevis, 2025); got != "DEVIS-2025-001" {
		t.Fatalf("year rollover: %q", got)
	}
	if got := next(models.DocDevis, 2024); got != "DEVIS-2024-002" {
		t.Fatalf("2024 counter disturbed by 2025: %q", got)
	}
}

func TestNumberingUnknownType(t *testing.T) {
	db := setupTestDB(t)
	num := NewNumberingService()
	err := db.Transaction(func(tx *gorm.DB) error {
		_, _, err := num.Next(tx, "avoir", 2024)
		return err
	})
	if err == nil {
		t.Fatal("expected error for unknown document type")
	}
}

func TestNumberingConcurrentNoDuplicates(t *testing.T) {
	db := setupTestDB(t)
	num := NewNumberingService()

	// sqlite serializes writers; pin the pool to one connection so concurrent
	// transactions queue instead of failing on the shared-cache table lock.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	const n = 20
	var mu sync.Mutex
	seen := map[int]bool{}
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Transaction(func(tx *gorm.DB) error {
				seq, _, err := num.Next(tx, models.DocFacture, 2024)
				if err != nil {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				if seen[seq] {
					t.Errorf("sequence %d issued twice", seq)
				}
				seen[seq] = true
				return nil
			})
			if err != nil {
				t.Errorf("next: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Fatalf("issued %d distinct numbers, want %d", len(seen), n)
	}
	for i := 1; i <= n; i++ {
		if !seen[i] {
			t.Fatalf("gap: sequence %d never issued", i)
		}
	}
}
