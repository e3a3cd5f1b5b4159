package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/unikontroll/storefront-api/internal/domains/orders/application"
	ordersports "github.com/unikontroll/storefront-api/internal/domains/orders/ports"
	apierrors "github.com/unikontroll/storefront-api/internal/shared/errors"
)

// respondOrderError maps lifecycle errors to problem responses.
// Validation and not-found problems carry actionable detail; store and
// processor failures stay opaque.
func respondOrderError(c *gin.Context, err error) {
	var validation *ordersapp.ValidationError
	switch {
	case errors.As(err, &validation):
		apierrors.ValidationFailed(c, map[string]string{validation.Field: validation.Message})
	case errors.Is(err, ordersports.ErrNotFound):
		id := c.Param("id")
		if id == "" {
			id = c.Query("orderId")
		}
		apierrors.NotFound(c, "order", id)
	case errors.Is(err, ordersapp.ErrPaymentUnavailable):
		apierrors.Respond(c, apierrors.ErrUnavailable.WithDetail("payment processor unavailable"))
	default:
		apierrors.Respond(c, apierrors.ErrInternal)
	}
}
