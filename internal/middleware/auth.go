package middleware

import (
	"context"
	"net/http"

	"storefront/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SessionValidator interface {
	Validate(ctx context.Context, token string) (*auth.Session, error)
}

type CartTokenParser interface {
	ParseCartToken(token string) (string, error)
}

// AdminSession lets a request through only with a live admin session.
// A rejected token is cleared from the client.
func AdminSession(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing admin session"})
			return
		}

		session, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			auth.ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			return
		}

		c.Set("adminSession", token)
		c.Set("sessionExpiresAt", session.ExpiresAt)
		c.Next()
	}
}

// CartToken resolves X-Cart-Token to the cart id handlers work on.
func CartToken(tokens CartTokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Cart-Token")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing cart token"})
			return
		}

		cartID, err := tokens.ParseCartToken(raw)
		if err != nil {
			log.Debug().Err(err).Msg("cart token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid cart token: " + err.Error()})
			return
		}

		c.Set("cartID", cartID)
		c.Next()
	}
}
