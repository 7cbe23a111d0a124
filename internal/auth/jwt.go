package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const cartTokenTTL = 30 * 24 * time.Hour

// CartTokens signs anonymous cart ids. Clients hold the token and send
// it back in X-Cart-Token.
type CartTokens struct {
	secret []byte
}

func NewCartTokens(secret string) (*CartTokens, error) {
	if secret == "" {
		return nil, errors.New("CART_TOKEN_SECRET not set")
	}
	return &CartTokens{secret: []byte(secret)}, nil
}

func (t *CartTokens) IssueCartToken(cartID string) (string, error) {
	if cartID == "" {
		return "", errors.New("empty cartID passed to IssueCartToken")
	}

	claims := jwt.MapClaims{
		"cartID": cartID,
		"exp":    time.Now().Add(cartTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ParseCartToken returns the cart id carried by a valid token.
func (t *CartTokens) ParseCartToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	cartID, _ := claims["cartID"].(string)
	if cartID == "" {
		return "", errors.New("token has no cart")
	}
	return cartID, nil
}
