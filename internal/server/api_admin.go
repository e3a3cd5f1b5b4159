package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adminports "github.com/unikontroll/storefront-api/internal/domains/admins/ports"
	ordersmapper "github.com/unikontroll/storefront-api/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/unikontroll/storefront-api/internal/domains/orders/ports"
	apierrors "github.com/unikontroll/storefront-api/internal/shared/errors"
)

// AdminAPI exposes the session-gated listing and deletion surface.
type AdminAPI struct {
	admins           adminports.Service
	orders           ordersports.Service
	sessionMaxAgeSec int
}

// NewAdminAPI wires dependencies. sessionMaxAge drives the cookie expiry
// and should match the admin service's session TTL.
func NewAdminAPI(admins adminports.Service, orders ordersports.Service, sessionMaxAgeSec int) AdminAPI {
	return AdminAPI{admins: admins, orders: orders, sessionMaxAgeSec: sessionMaxAgeSec}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Post /api/admin/login
// Establish an admin session.
func (api *AdminAPI) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	token, err := api.admins.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, adminports.ErrInvalidCredentials) {
			apierrors.Respond(c, apierrors.ErrUnauthorized)
			return
		}
		apierrors.RespondError(c, err)
		return
	}
	c.SetCookie(SessionCookieName, token, api.sessionMaxAgeSec, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Post /api/admin/logout
// Clear the admin session.
func (api *AdminAPI) Logout(c *gin.Context) {
	if err := api.admins.Logout(c.Request.Context(), currentSessionToken(c)); err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type listOrdersResponse struct {
	OK     bool                 `json:"ok"`
	Orders []ordersmapper.Order `json:"orders"`
}

// Get /api/admin/orders
// List every order, newest first.
func (api *AdminAPI) ListOrders(c *gin.Context) {
	orders, err := api.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, listOrdersResponse{OK: true, Orders: ordersmapper.FromDomainOrders(orders)})
}

// Delete /api/admin/orders/:id
// Remove an order.
func (api *AdminAPI) DeleteOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		apierrors.BadRequest(c, "order id is required")
		return
	}
	if err := api.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
