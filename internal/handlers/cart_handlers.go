package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/vinyloveschody/storefront-api/internal/cart"
	"github.com/vinyloveschody/storefront-api/internal/middleware"
	"github.com/vinyloveschody/storefront-api/internal/pricing"
)

//
// --- Cart Handlers ---
//

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductSlug string `json:"product_slug" binding:"required"`
	Quantity    int    `json:"quantity" binding:"omitempty,gt=0"`
	Sample      bool   `json:"sample"`
}

// AddToCart is the handler for POST /v1/cart/items. The price and
// display fields are snapshotted from the catalog record here; sample
// requests get a free line capped at one unit.
func (h *Handlers) AddToCart(c *gin.Context) {
	key := middleware.CartKey(c)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	productSlug := slug.Make(input.ProductSlug)
	product, err := h.Catalog.ProductBySlug(c.Request.Context(), productSlug)
	if err != nil {
		h.Log.Error("product lookup failed", zap.String("slug", productSlug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	info := cart.ProductInfo{
		Slug:       product.Slug,
		Title:      product.Title,
		Image:      product.Image,
		Link:       product.Link,
		PriceNet:   product.UnitPriceNet,
		PriceGross: pricing.AddVat(product.UnitPriceNet),
		Currency:   product.Currency,
	}
	if input.Sample {
		// Sample requests are free; the line still carries the display
		// fields of the product it samples.
		info.PriceNet = 0
		info.PriceGross = 0
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item, err := h.Cart.AddItem(c.Request.Context(), key, info, quantity, input.Sample)
	if err != nil {
		h.Log.Error("failed to add cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	summary, err := h.Cart.Summary(c.Request.Context(), key)
	if err != nil {
		h.Log.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item, "cart": summary})
}

// GetCart is the handler for GET /v1/cart. It returns the live items
// plus the derived aggregates the header renders.
func (h *Handlers) GetCart(c *gin.Context) {
	key := middleware.CartKey(c)

	summary, err := h.Cart.Summary(c.Request.Context(), key)
	if err != nil {
		h.Log.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateCartItemInput defines the JSON for updating an item's quantity.
// The quantity is a pointer so an explicit 0 (meaning "remove the line")
// survives binding.
type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:id. Quantity is
// an absolute set; zero or less removes the line.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	key := middleware.CartKey(c)
	lineID := c.Param("id")

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.Cart.UpdateQuantity(c.Request.Context(), key, lineID, *input.Quantity); err != nil {
		h.Log.Error("failed to update cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	summary, err := h.Cart.Summary(c.Request.Context(), key)
	if err != nil {
		h.Log.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:id.
// Removing an absent line is a no-op and still returns the cart.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	key := middleware.CartKey(c)
	lineID := c.Param("id")

	if err := h.Cart.RemoveItem(c.Request.Context(), key, lineID); err != nil {
		h.Log.Error("failed to remove cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	summary, err := h.Cart.Summary(c.Request.Context(), key)
	if err != nil {
		h.Log.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ClearCart is the handler for DELETE /v1/cart. The order-confirmation
// page calls this unconditionally after a successful submission.
func (h *Handlers) ClearCart(c *gin.Context) {
	key := middleware.CartKey(c)

	if err := h.Cart.ClearCart(c.Request.Context(), key); err != nil {
		h.Log.Error("failed to clear cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
