package finbook

import (
	"errors"
	"fmt"
)

// ErrInsufficientSavings is returned by Ledger.WithdrawFromSavings when the
// withdrawal would drive the savings balance below zero at any month. The
// ledger state is left unchanged.
var ErrInsufficientSavings = errors.New("insufficient savings")

// ValidationError reports an invalid value rejected before any mutation took
// place.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
