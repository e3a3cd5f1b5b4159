package application

import (
	"errors"
	"fmt"

	"github.com/unikontroll/storefront-api/internal/domains/orders/domain"
)

// ErrPaymentUnavailable signals the payment processor is not configured
// or could not be reached. Orders created before the failure stay
// persisted as pending.
var ErrPaymentUnavailable = errors.New("payment processor unavailable")

// ValidationError reports a user-correctable problem with a single
// checkout form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrEmptyName):
		return &ValidationError{Field: "name", Message: domain.ErrEmptyName.Error()}
	case errors.Is(err, domain.ErrEmptyEmail):
		return &ValidationError{Field: "email", Message: domain.ErrEmptyEmail.Error()}
	case errors.Is(err, domain.ErrEmptyAddress):
		return &ValidationError{Field: "address", Message: domain.ErrEmptyAddress.Error()}
	default:
		return err
	}
}
