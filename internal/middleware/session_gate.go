package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/token"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/logger"
	"go.uber.org/zap"
)

const (
	// ContextKeyUserID is the context key for the authenticated user's ID
	ContextKeyUserID = "user_id"
	// ContextKeyRole is the context key for the authenticated user's role
	ContextKeyRole = "role"

	loginPath = "/login"
)

// publicRoutes are reachable without a session. Matching is exact:
// "/jobs" is gated even though "/" is public.
var publicRoutes = map[string]struct{}{
	"/":         {},
	"/login":    {},
	"/register": {},
}

// SessionGate redirects unauthenticated requests to the login page.
// It never fails a request outright: a missing, expired or tampered
// cookie always turns into a redirect, so an anonymous visitor lands
// on /login instead of an error page.
func SessionGate(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := publicRoutes[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		cookie, err := c.Cookie("token")
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(cookie)
		if err != nil {
			logger.Get().Warn("rejected session cookie",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, string(claims.Role))
		c.Next()
	}
}

// ClaimsFromContext rebuilds the session claims the gate stored on the
// request, or nil when the request never passed the gate.
func ClaimsFromContext(c *gin.Context) *domain.Claims {
	userID, ok := c.Get(ContextKeyUserID)
	if !ok {
		return nil
	}
	role, ok := c.Get(ContextKeyRole)
	if !ok {
		return nil
	}
	return &domain.Claims{
		UserID: userID.(string),
		Role:   domain.Role(role.(string)),
	}
}
