package handlers

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vinyloveschody/storefront-api/internal/cart"
	"github.com/vinyloveschody/storefront-api/internal/catalog"
	"github.com/vinyloveschody/storefront-api/internal/checkout"
	"github.com/vinyloveschody/storefront-api/internal/email"
	"github.com/vinyloveschody/storefront-api/internal/leads"
)

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	DB       *sql.DB
	Catalog  *catalog.Store
	Cart     *cart.Store
	Checkout *checkout.Pipeline
	Prefills *leads.PrefillStore
	Mailer   email.Sender
	Validate *validator.Validate
	Log      *zap.Logger

	// Sender/recipient settings for the lead notification email.
	EmailFrom  string
	OwnerEmail string
}
