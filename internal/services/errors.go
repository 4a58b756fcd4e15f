package services

import (
	"errors"
	"fmt"

	"github.com/diewo77/freelance-manager/internal/validation"
)

// ErrNotFound indicates that a referenced client/devis/facture/contrat does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition indicates a status change outside the transition table.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrDuplicateNumber indicates a numbering invariant violation. It should be
// unreachable while the counter contract holds; seeing it means a concurrency
// bug and the operation must abort without partial writes.
var ErrDuplicateNumber = errors.New("duplicate document number")

// ErrClientReferenced blocks client deletion while devis/factures/contrats reference it.
var ErrClientReferenced = errors.New("client referenced by existing documents")

// ValidationError carries per-field violations back to the caller.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", map[string]string(e.Violations))
}

// Violated wraps a non-empty Violations map; returns nil when the map is empty.
func Violated(v validation.Violations) error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
