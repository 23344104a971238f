package config

import (
	"os"
)

// Config holds every runtime setting the API reads from the environment.
// main() loads .env first (via godotenv), so local development only needs
// a .env file next to the binary.
type Config struct {
	Env      string // "dev" or "production"
	HTTPAddr string // address the gin server listens on, e.g. ":8080"
	LogLevel string

	// MySQL DSN for the content store (catalog documents, cart snapshots, orders).
	DSN string

	// Secret used to sign cart session tokens (HS256).
	CartTokenSecret string

	// Transactional email provider settings.
	EmailAPIURL string // send endpoint of the provider
	EmailAPIKey string // bearer key; empty key switches to the log-only sender
	EmailFrom   string // From header for both outbound emails
	OwnerEmail  string // business owner's inbox for order/lead notifications

	// Public base URL of the storefront, used to build product links in emails.
	SiteBaseURL string
}

// Load reads the configuration from the environment, falling back to
// development defaults where a value is not set.
func Load() Config {
	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DSN:             getEnv("DB_DSN", "root:root@tcp(127.0.0.1:3306)/vinylove_schody?parseTime=true"),
		CartTokenSecret: getEnv("CART_TOKEN_SECRET", "dev-only-cart-secret"),
		EmailAPIURL:     getEnv("EMAIL_API_URL", "https://api.resend.com/emails"),
		EmailAPIKey:     getEnv("EMAIL_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "obchod@vinyloveschody.cz"),
		OwnerEmail:      getEnv("OWNER_EMAIL", "info@vinyloveschody.cz"),
		SiteBaseURL:     getEnv("SITE_BASE_URL", "https://www.vinyloveschody.cz"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
