package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	adminports "github.com/unikontroll/storefront-api/internal/domains/admins/ports"
	apierrors "github.com/unikontroll/storefront-api/internal/shared/errors"
)

// SessionCookieName carries the admin session token between requests.
const SessionCookieName = "admin_session"

const sessionTokenKey = "admin.session.token"

// RequireAdmin guards endpoints behind a live admin session. A missing
// or invalid token yields 401 with no further detail.
func RequireAdmin(admins adminports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if err := admins.Authenticate(c.Request.Context(), token); err != nil {
			apierrors.Respond(c, apierrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func currentSessionToken(c *gin.Context) string {
	if token, ok := c.Get(sessionTokenKey); ok {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return sessionToken(c)
}
