package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vinyloveschody/storefront-api/internal/email"
	"github.com/vinyloveschody/storefront-api/internal/forms"
	"github.com/vinyloveschody/storefront-api/internal/middleware"
	"github.com/vinyloveschody/storefront-api/internal/models"
)

//
// --- Lead / Contact Handlers ---
//

// LeadInput defines the JSON for the contact/lead form. The realization
// flag gates the optional project description.
type LeadInput struct {
	FirstName   string `json:"firstName" validate:"required,min=2"`
	LastName    string `json:"lastName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,min=9"`
	Message     string `json:"message"`
	Realization bool   `json:"realization"`
	ProjectDesc string `json:"projectDesc"`
}

// SubmitLead is the handler for POST /v1/leads: validate, email the
// owner, and drop any staged prefill data for this session.
func (h *Handlers) SubmitLead(c *gin.Context) {
	var input LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Neplatná data formuláře"})
		return
	}

	if err := h.Validate.Struct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Zkontrolujte prosím zadané údaje",
			"details": forms.FieldErrors(err),
		})
		return
	}

	subject, body, err := email.RenderLeadEmail(email.LeadEmailData{
		Name:        strings.TrimSpace(input.FirstName + " " + input.LastName),
		Email:       input.Email,
		Phone:       input.Phone,
		Message:     input.Message,
		Realization: input.Realization,
		ProjectDesc: input.ProjectDesc,
	})
	if err != nil {
		h.Log.Error("failed to render lead email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Poptávku se nepodařilo odeslat"})
		return
	}

	if err := h.Mailer.Send(c.Request.Context(), email.Message{
		From: h.EmailFrom, To: h.OwnerEmail, Subject: subject, HTML: body,
	}); err != nil {
		h.Log.Error("failed to send lead email", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Poptávku se nepodařilo odeslat, zkuste to prosím později"})
		return
	}

	h.Prefills.Clear(middleware.CartKey(c))

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PutPrefill is the handler for PUT /v1/leads/prefill/:key. The homepage
// and realization micro-forms stage partial contact data here for the
// main contact form to pick up.
func (h *Handlers) PutPrefill(c *gin.Context) {
	slot := c.Param("key")

	var data models.LeadPrefill
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.Prefills.Put(middleware.CartKey(c), slot, data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown prefill slot"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPrefill is the handler for GET /v1/leads/prefill. Missing slots are
// simply absent from the response; the form prefills what it finds.
func (h *Handlers) GetPrefill(c *gin.Context) {
	staged := h.Prefills.Get(middleware.CartKey(c))
	c.JSON(http.StatusOK, gin.H{"prefill": staged})
}
