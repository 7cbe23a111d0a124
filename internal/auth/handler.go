package auth

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/notice"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const SessionCookie = "admin_session"

type Handler struct {
	service      *Service
	secureCookie bool
}

func NewHandler(service *Service, secureCookie bool) *Handler {
	return &Handler{service: service, secureCookie: secureCookie}
}

type loginRequest struct {
	Password string `json:"password"`
}

// --------------------------------------------------
// POST /admin/login
// --------------------------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Password)
	if errors.Is(err, ErrInvalidPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":  err.Error(),
			"notice": notice.Error("Invalid Password", "Please enter the correct admin password"),
		})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("admin login")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "login failed",
			"notice": notice.Error("Login Failed", "An error occurred during login"),
		})
		return
	}

	SetSessionCookie(c, session.Token, int(h.service.TTL().Seconds()), h.secureCookie)

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"notice":     notice.Info("Login Successful", "Welcome to the admin panel"),
	})
}

// --------------------------------------------------
// POST /admin/logout
// --------------------------------------------------
func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context(), TokenFromRequest(c))
	ClearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"notice": notice.Info("Logged out", "You have been successfully logged out"),
	})
}

// --------------------------------------------------
// GET /admin/session
// --------------------------------------------------
func (h *Handler) Session(c *gin.Context) {
	session, err := h.service.Validate(c.Request.Context(), TokenFromRequest(c))
	if err != nil {
		ClearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"expires_at":    session.ExpiresAt,
	})
}

// TokenFromRequest reads the session cookie, falling back to a Bearer
// Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}

	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
