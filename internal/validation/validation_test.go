package validation

import (
	"testing"
	"time"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("nom", "  ", v)
	if v["nom"] != "required" {
		t.Fatalf("violations = %v", v)
	}
	v = Violations{}
	Required("nom", "ACME", v)
	if !v.Empty() {
		t.Fatalf("violations = %v", v)
	}
}

func TestSIRET(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"", true},
		{"12345678900011", true},
		{"123 456 789 00011", true}, // les espaces de présentation sont tolérés
		{"1234567890001", false},
		{"12345678900011X", false},
		{"1234567890001A", false},
	}
	for _, c := range cases {
		v := Violations{}
		SIRET("siret", c.in, v)
		if c.ok != v.Empty() {
			t.Errorf("SIRET(%q): violations = %v, want ok=%v", c.in, v, c.ok)
		}
	}
}

func TestOneOf(t *testing.T) {
	v := Violations{}
	OneOf("type", "forfait", []string{"tjm", "forfait"}, v)
	if !v.Empty() {
		t.Fatalf("violations = %v", v)
	}
	OneOf("type", "abonnement", []string{"tjm", "forfait"}, v)
	if v["type"] != "invalid_value" {
		t.Fatalf("violations = %v", v)
	}
}

func TestDateRange(t *testing.T) {
	debut := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fin := debut.AddDate(0, 1, 0)

	v := Violations{}
	DateRange("dates", &debut, &fin, v)
	if !v.Empty() {
		t.Fatalf("violations = %v", v)
	}
	DateRange("dates", &fin, &debut, v)
	if v["dates"] != "end_before_start" {
		t.Fatalf("violations = %v", v)
	}
	// Bornes manquantes: pas d'avis.
	v = Violations{}
	DateRange("dates", &debut, nil, v)
	DateRange("dates", nil, &fin, v)
	if !v.Empty() {
		t.Fatalf("violations = %v", v)
	}
}

func TestFloats(t *testing.T) {
	v := Violations{}
	PositiveFloat("tjm", 0, v)
	if v["tjm"] != "must_be_positive" {
		t.Fatalf("violations = %v", v)
	}
	v = Violations{}
	NonNegativeFloat("acompte", -1, v)
	if v["acompte"] != "must_not_be_negative" {
		t.Fatalf("violations = %v", v)
	}
	v = Violations{}
	NonNegativeFloat("acompte", 0, v)
	if !v.Empty() {
		t.Fatalf("violations = %v", v)
	}
}
