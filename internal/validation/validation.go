package validation

import (
	"strings"
	"time"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_value"
}

// SIRET is 14 digits when present (empty is allowed, some foreign clients have none).
func SIRET(field, value string, v Violations) {
	s := strings.ReplaceAll(value, " ", "")
	if s == "" {
		return
	}
	if len(s) != 14 {
		v[field] = "invalid_siret"
		return
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			v[field] = "invalid_siret"
			return
		}
	}
}

// DateRange rejects an end date strictly before its start date.
func DateRange(field string, debut, fin *time.Time, v Violations) {
	if debut == nil || fin == nil {
		return
	}
	if fin.Before(*debut) {
		v[field] = "end_before_start"
	}
}
