package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinyloveschody/storefront-api/internal/checkout"
)

//
// --- Checkout Handler ---
//

// SubmitCheckout is the handler for POST /v1/checkout. The pipeline does
// its own schema validation, so binding here only has to produce a
// well-formed struct. The cart itself is cleared by the confirmation
// page (DELETE /v1/cart), not here.
func (h *Handlers) SubmitCheckout(c *gin.Context) {
	var input checkout.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, checkout.Result{
			Success: false,
			Error:   "Neplatná data formuláře",
		})
		return
	}

	result := h.Checkout.Submit(c.Request.Context(), input)
	if !result.Success {
		if len(result.Details) > 0 {
			// Validation failure: per-field messages for the client to
			// merge into its form-error state.
			c.JSON(http.StatusBadRequest, result)
			return
		}
		// Dispatch or storage failure; the client shows a generic toast.
		c.JSON(http.StatusBadGateway, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
