package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "clientportal/internal/adapter/http/dto/request"
	response "clientportal/internal/adapter/http/dto/response"
	"clientportal/internal/adapter/http/middleware"
	"clientportal/internal/logger"
	"clientportal/internal/usecase"
	"clientportal/pkg"
)

var errNoSession = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// AuthHandler issues and clears the staff session cookies.
type AuthHandler struct {
	usecase       usecase.IAuthUseCase
	secureCookies bool
}

func NewAuthHandler(uc usecase.IAuthUseCase, secureCookies bool) *AuthHandler {
	return &AuthHandler{usecase: uc, secureCookies: secureCookies}
}

func (h *AuthHandler) setCookies(c *gin.Context, token, role string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieAuth, token, maxAge, "/", "", h.secureCookies, true)
	c.SetCookie(middleware.CookieRole, role, maxAge, "/", "", h.secureCookies, true)
}

// Login godoc
// @Summary  Staff login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "Password"
// @Success  200 {object} response.SessionResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}
	token, session, err := h.usecase.Login(c.Request.Context(), payload.Password)
	if err != nil {
		logger.FromContext(c).Warn("[auth][handler] login failed", zap.String("client_ip", c.ClientIP()))
		writeError(c, err)
		return
	}
	h.setCookies(c, token, string(session.Role), int(h.usecase.SessionTTL().Seconds()))
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookies(c, "", "", -1)
	c.JSON(http.StatusOK, response.OK())
}

// Session returns the session admitted by the staff middleware.
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		writeAppError(c, errNoSession)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}
