// Package server binds the order lifecycle and admin gate to HTTP/JSON
// with gin.
package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	adminports "github.com/unikontroll/storefront-api/internal/domains/admins/ports"
	apierrors "github.com/unikontroll/storefront-api/internal/shared/errors"
)

// Handlers groups the API handler sets wired into the router.
type Handlers struct {
	Storefront StorefrontAPI
	Admin      AdminAPI
}

// NewRouter builds the gin engine. Listing and deletion are only
// reachable through the admin gate; staticDir, when set, serves the
// storefront pages with an index.html fallback.
func NewRouter(handlers Handlers, admins adminports.Service, staticDir string) *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	api.POST("/checkout", handlers.Storefront.CreateCheckout)
	api.GET("/checkout/confirm", handlers.Storefront.ConfirmCheckout)

	admin := api.Group("/admin")
	admin.POST("/login", handlers.Admin.Login)
	admin.POST("/logout", RequireAdmin(admins), handlers.Admin.Logout)
	admin.GET("/orders", RequireAdmin(admins), handlers.Admin.ListOrders)
	admin.DELETE("/orders/:id", RequireAdmin(admins), handlers.Admin.DeleteOrder)

	if staticDir != "" {
		router.NoRoute(staticHandler(staticDir))
	}
	return router
}

// staticHandler serves files from the storefront directory and falls
// back to index.html for unknown paths so client-side routes resolve.
func staticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			apierrors.Respond(c, apierrors.ErrNotFound)
			return
		}
		requested := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
