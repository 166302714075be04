package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/logger"
	"clientportal/internal/usecase"
	"clientportal/pkg"
)

const (
	// CookieAuth holds the signed session token.
	CookieAuth = "admin-auth"
	// CookieRole mirrors the role for the admin UI; it is never trusted server-side.
	CookieRole = "user-role"

	ctxSessionKey = "session"
)

// Auth guards staff routes with the admin-auth cookie.
type Auth struct {
	usecase usecase.IAuthUseCase
}

func NewAuth(uc usecase.IAuthUseCase) *Auth {
	return &Auth{usecase: uc}
}

// Session validates the request cookie without aborting. ok is false for
// anonymous or invalid sessions.
func (a *Auth) Session(c *gin.Context) (entities.Session, bool) {
	if s, ok := c.Get(ctxSessionKey); ok {
		if session, ok := s.(entities.Session); ok {
			return session, true
		}
	}
	if a == nil || a.usecase == nil {
		return entities.Session{}, false
	}
	token, err := c.Cookie(CookieAuth)
	if err != nil || token == "" {
		return entities.Session{}, false
	}
	session, err := a.usecase.Validate(c.Request.Context(), token)
	if err != nil {
		logger.FromContext(c).Debug("[auth][middleware] invalid session cookie", zap.Error(err))
		return entities.Session{}, false
	}
	c.Set(ctxSessionKey, session)
	return session, true
}

func (a *Auth) require(allowed func(entities.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := a.Session(c)
		if !ok {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !allowed(session.Role) {
			logger.FromContext(c).Warn("[auth][middleware] role not allowed", zap.String("role", string(session.Role)))
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireStaff admits admin and team sessions.
func (a *Auth) RequireStaff() gin.HandlerFunc {
	return a.require(entities.Role.IsStaff)
}

// RequireAdmin admits admin sessions only.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return a.require(func(r entities.Role) bool { return r == entities.RoleAdmin })
}

// SessionFromContext returns the session stored by a previous Session call.
func SessionFromContext(c *gin.Context) (entities.Session, bool) {
	s, ok := c.Get(ctxSessionKey)
	if !ok {
		return entities.Session{}, false
	}
	session, ok := s.(entities.Session)
	return session, ok
}
