package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	adminsapp "github.com/unikontroll/storefront-api/internal/domains/admins/application"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port          string
	PublicBaseURL string
	StaticDir     string

	DataFile    string
	PostgresDSN string

	UnitPrice       int64
	Currency        string
	ProductName     string
	ProductImageURL string

	AdminUser  string
	AdminPass  string
	SessionTTL time.Duration

	CheckoutSecretKey string
	CheckoutBaseURL   string
}

// LoadConfig reads environment variables, applies defaults, and
// validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            envDefault("PORT", "8080"),
		StaticDir:       envDefault("STATIC_DIR", "public"),
		DataFile:        envDefault("DATA_FILE", "data/orders.json"),
		PostgresDSN:     strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		UnitPrice:       150,
		Currency:        envDefault("CURRENCY", "SEK"),
		ProductName:     envDefault("PRODUCT_NAME", "UniKontroll"),
		ProductImageURL: strings.TrimSpace(os.Getenv("PRODUCT_IMAGE_URL")),
		AdminUser:       envDefault("ADMIN_USER", "admin"),
		AdminPass:       envDefault("ADMIN_PASS", "password"),
		SessionTTL:      adminsapp.DefaultSessionTTL,

		CheckoutSecretKey: strings.TrimSpace(os.Getenv("CHECKOUT_SECRET_KEY")),
		CheckoutBaseURL:   strings.TrimSpace(os.Getenv("CHECKOUT_API_BASE_URL")),
	}
	cfg.PublicBaseURL = envDefault("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port)

	if raw := strings.TrimSpace(os.Getenv("UNIT_PRICE")); raw != "" {
		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || price <= 0 {
			return Config{}, fmt.Errorf("UNIT_PRICE must be a positive integer")
		}
		cfg.UnitPrice = price
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be a positive integer")
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	return cfg, nil
}

// CheckoutConfigured reports whether the payment provider can be dialed.
func (c Config) CheckoutConfigured() bool {
	return c.CheckoutSecretKey != "" && c.CheckoutBaseURL != ""
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
