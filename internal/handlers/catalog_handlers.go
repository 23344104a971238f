package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/vinyloveschody/storefront-api/internal/models"
	"github.com/vinyloveschody/storefront-api/internal/pricing"
)

//
// --- Catalog Handlers (read-only) ---
//

// priceJSON is the net/gross pair rendered on listings and detail pages.
type priceJSON struct {
	Net      int64  `json:"net"`
	Gross    int64  `json:"gross"`
	Currency string `json:"currency"`
}

// productView decorates a catalog record with the derived pricing the
// storefront renders: per-unit always, per-package for floors sold by
// the box.
type productView struct {
	models.Product
	PricePerUnit    priceJSON  `json:"pricePerUnit"`
	PricePerPackage *priceJSON `json:"pricePerPackage,omitempty"`
	Badges          []string   `json:"badges"`
}

func newProductView(p models.Product) productView {
	view := productView{
		Product: p,
		PricePerUnit: priceJSON{
			Net:      p.UnitPriceNet,
			Gross:    pricing.AddVat(p.UnitPriceNet),
			Currency: p.Currency,
		},
		Badges: p.Tags,
	}
	if view.Badges == nil {
		view.Badges = []string{}
	}

	if p.Floor != nil && p.Floor.PackCoverageM2 > 0 {
		packNet := pricing.PackagePrice(p.UnitPriceNet, p.Floor.PackCoverageM2)
		view.PricePerPackage = &priceJSON{
			Net:      packNet,
			Gross:    pricing.AddVat(packNet),
			Currency: p.Currency,
		}
	}
	return view
}

// GetCategories is the handler for GET /v1/catalog/categories: the
// storefront navigation with product counts.
func (h *Handlers) GetCategories(c *gin.Context) {
	categories, err := h.Catalog.Categories(c.Request.Context())
	if err != nil {
		h.Log.Error("category list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory is the handler for GET /v1/catalog/categories/:slug.
// An unknown category renders as an empty listing, not an error page.
func (h *Handlers) GetCategory(c *gin.Context) {
	categorySlug := slug.Make(c.Param("slug"))

	products, err := h.Catalog.ProductsByCategory(c.Request.Context(), categorySlug)
	if err != nil {
		h.Log.Error("category listing failed", zap.String("category", categorySlug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
		return
	}

	items := make([]productView, 0, len(products))
	for _, p := range products {
		items = append(items, newProductView(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"category": categorySlug,
		"items":    items,
	})
}

// GetProduct is the handler for GET /v1/catalog/products/:slug.
// The response carries the typed document, derived pricing and the
// decor-based cross-sell sections.
func (h *Handlers) GetProduct(c *gin.Context) {
	productSlug := slug.Make(c.Param("slug"))

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

	crossSell, err := h.Catalog.CrossSell(c.Request.Context(), product)
	if err != nil {
		h.Log.Error("cross-sell lookup failed", zap.String("slug", productSlug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load related products"})
		return
	}
	if crossSell == nil {
		crossSell = []models.CrossSellSection{}
	}

	c.JSON(http.StatusOK, gin.H{
		"product":   newProductView(*product),
		"crossSell": crossSell,
	})
}
