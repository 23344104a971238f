package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vinyloveschody/storefront-api/internal/auth"
	"github.com/vinyloveschody/storefront-api/internal/cart"
	"github.com/vinyloveschody/storefront-api/internal/catalog"
	"github.com/vinyloveschody/storefront-api/internal/checkout"
	"github.com/vinyloveschody/storefront-api/internal/config"
	"github.com/vinyloveschody/storefront-api/internal/database"
	"github.com/vinyloveschody/storefront-api/internal/email"
	"github.com/vinyloveschody/storefront-api/internal/forms"
	"github.com/vinyloveschody/storefront-api/internal/handlers"
	"github.com/vinyloveschody/storefront-api/internal/leads"
	"github.com/vinyloveschody/storefront-api/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.OpenDB(cfg.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// The email sender: real provider when a key is configured, log-only
	// otherwise so local development works without an account.
	var sender email.Sender
	if cfg.EmailAPIKey != "" {
		sender = email.NewAPISender(cfg.EmailAPIURL, cfg.EmailAPIKey, logger)
	} else {
		logger.Warn("EMAIL_API_KEY not set, using log-only email sender")
		sender = email.NewLogSender(logger)
	}

	app := &handlers.Handlers{
		DB:         db,
		Catalog:    catalog.NewStore(db),
		Cart:       cart.NewStore(cart.NewMySQLPersistence(db)),
		Checkout:   checkout.NewPipeline(checkout.NewMySQLOrderStore(db), sender, cfg.EmailFrom, cfg.OwnerEmail, logger),
		Prefills:   leads.NewPrefillStore(),
		Mailer:     sender,
		Validate:   forms.NewValidator(),
		Log:        logger,
		EmailFrom:  cfg.EmailFrom,
		OwnerEmail: cfg.OwnerEmail,
	}

	tokens := auth.NewCartTokens(cfg.CartTokenSecret)
	router := routes.SetupRouter(app, tokens, cfg.SiteBaseURL)

	logger.Info("starting storefront API", zap.String("addr", cfg.HTTPAddr))
	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
