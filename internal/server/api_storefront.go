package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	ordersports "github.com/unikontroll/storefront-api/internal/domains/orders/ports"
	apierrors "github.com/unikontroll/storefront-api/internal/shared/errors"
)

// StorefrontAPI wires the public checkout endpoints to the order
// lifecycle.
type StorefrontAPI struct {
	orders ordersports.Service
}

// NewStorefrontAPI wires dependencies.
func NewStorefrontAPI(orders ordersports.Service) StorefrontAPI {
	return StorefrontAPI{orders: orders}
}

type checkoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	// Qty arrives as a number or a string depending on the form
	// serializer; anything unparsable coerces to one.
	Qty any `json:"qty"`
}

type checkoutResponse struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"orderId"`
	URL     string `json:"url"`
}

// Post /api/checkout
// Create a pending order and open a hosted-checkout session.
func (api *StorefrontAPI) CreateCheckout(c *gin.Context) {
	var payload checkoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	input := ordersports.CreateOrderInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Address: payload.Address,
		Qty:     coerceQty(payload.Qty),
	}
	redirect, err := api.orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkoutResponse{OK: true, OrderID: redirect.OrderID, URL: redirect.RedirectURL})
}

type confirmResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status,omitempty"`
}

// Get /api/checkout/confirm
// Reconcile an order against the provider-reported session status.
func (api *StorefrontAPI) ConfirmCheckout(c *gin.Context) {
	orderID := strings.TrimSpace(c.Query("orderId"))
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if orderID == "" || sessionID == "" {
		apierrors.BadRequest(c, "orderId and session_id are required")
		return
	}
	result, err := api.orders.ConfirmPayment(c.Request.Context(), orderID, sessionID)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	if !result.Paid {
		c.JSON(http.StatusOK, confirmResponse{OK: false, Status: result.Status})
		return
	}
	c.JSON(http.StatusOK, confirmResponse{OK: true})
}

func coerceQty(value any) int {
	var qty int
	switch v := value.(type) {
	case float64:
		qty = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 1
		}
		qty = parsed
	default:
		return 1
	}
	if qty < 1 {
		return 1
	}
	return qty
}
