package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinyloveschody/storefront-api/internal/auth"
	"github.com/vinyloveschody/storefront-api/internal/handlers"
	"github.com/vinyloveschody/storefront-api/internal/middleware"
)

// CORSMiddleware allows the storefront frontend to call the API with the
// cart cookie attached.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every route of the storefront API.
func SetupRouter(h *handlers.Handlers, tokens *auth.CartTokens, allowedOrigin string) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(allowedOrigin))

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Catalog Routes (public, read-only) ---
		v1.GET("/catalog/categories", h.GetCategories)
		v1.GET("/catalog/categories/:slug", h.GetCategory)
		v1.GET("/catalog/products/:slug", h.GetProduct)

		// --- Session-Scoped Routes ---
		// Everything below needs the visitor's cart key.
		session := v1.Group("/")
		session.Use(middleware.CartSession(tokens))
		{
			// --- Cart Routes ---
			session.GET("/cart", h.GetCart)
			session.POST("/cart/items", h.AddToCart)
			session.PUT("/cart/items/:id", h.UpdateCartItem)
			session.DELETE("/cart/items/:id", h.DeleteCartItem)
			session.DELETE("/cart", h.ClearCart)

			// --- Checkout ---
			session.POST("/checkout", h.SubmitCheckout)

			// --- Leads & Prefill Handoff ---
			session.POST("/leads", h.SubmitLead)
			session.PUT("/leads/prefill/:key", h.PutPrefill)
			session.GET("/leads/prefill", h.GetPrefill)
		}
	}

	return router
}
