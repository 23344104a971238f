package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vinyloveschody/storefront-api/internal/auth"
)

const (
	cartCookieName = "cart_token"
	cartKeyContext = "cartKey"

	cookieMaxAge = 30 * 24 * 3600
)

// CartSession resolves the visitor's cart key from the signed cookie.
// A missing, expired or tampered token mints a fresh cart key and sets a
// new cookie; the visitor just starts with an empty cart.
func CartSession(tokens *auth.CartTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(cartCookieName); err == nil {
			if key, err := tokens.Validate(raw); err == nil {
				c.Set(cartKeyContext, key)
				c.Next()
				return
			}
		}

		key := uuid.NewString()
		if signed, err := tokens.Generate(key); err == nil {
			c.SetCookie(cartCookieName, signed, cookieMaxAge, "/", "", false, true)
		}
		c.Set(cartKeyContext, key)
		c.Next()
	}
}

// CartKey reads the cart key the CartSession middleware stored on the
// request context.
func CartKey(c *gin.Context) string {
	key, _ := c.Get(cartKeyContext)
	s, _ := key.(string)
	return s
}
