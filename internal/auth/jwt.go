package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CartTokens signs and validates the cart session tokens the storefront
// keeps in a cookie. The token only carries the cart key; there are no
// user accounts.
type CartTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewCartTokens builds a signer around the configured secret. Tokens
// live for 30 days; an expired token simply gets the visitor a fresh
// empty cart.
func NewCartTokens(secret string) *CartTokens {
	return &CartTokens{
		secret: []byte(secret),
		ttl:    30 * 24 * time.Hour,
	}
}

// Generate creates a signed token for a cart key.
func (t *CartTokens) Generate(cartKey string) (string, error) {
	claims := jwt.MapClaims{
		"sub": cartKey,
		"exp": time.Now().Add(t.ttl).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses a token string and returns the cart key it carries.
func (t *CartTokens) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		cartKey, ok := claims["sub"].(string)
		if !ok || cartKey == "" {
			return "", errors.New("invalid subject claim")
		}
		return cartKey, nil
	}

	return "", errors.New("invalid token")
}
