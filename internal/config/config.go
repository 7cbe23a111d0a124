package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CheckoutStructured = "structured"
	CheckoutHandoff    = "handoff"
)

type Config struct {
	Env  string
	Port string

	DatabaseURL string

	CartTokenSecret string
	CartCachePath   string
	CartIdleTTL     time.Duration

	AdminPasswordHash string
	AdminSessionTTL   time.Duration

	CheckoutMode  string
	HandoffPhone  string
	HandoffFooter string

	CORSOrigins []string
	NATSURL     string

	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string

	LogLevel  string
	LogFormat string
}

// StorageEnabled reports whether dish image uploads can be served.
func (c *Config) StorageEnabled() bool {
	return c.R2Endpoint != "" && c.R2Bucket != ""
}

// Load reads the process environment, pulling in a .env file first
// outside production. Missing required keys fail the whole load.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"CART_TOKEN_SECRET",
		"ADMIN_PASSWORD_HASH",
	}

	mode := strings.ToLower(getenv("CHECKOUT_MODE", CheckoutStructured))
	switch mode {
	case CheckoutStructured:
	case CheckoutHandoff:
		required = append(required, "HANDOFF_PHONE")
	default:
		return nil, fmt.Errorf("invalid CHECKOUT_MODE %q", mode)
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			return nil, fmt.Errorf("missing env var: %s", k)
		}
	}

	ttl, err := time.ParseDuration(getenv("ADMIN_SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_SESSION_TTL: %w", err)
	}

	cartIdle, err := time.ParseDuration(getenv("CART_IDLE_TTL", "30m"))
	if err != nil || cartIdle <= 0 {
		return nil, fmt.Errorf("invalid CART_IDLE_TTL %q", os.Getenv("CART_IDLE_TTL"))
	}

	return &Config{
		Env:  getenv("APP_ENV", "development"),
		Port: getenv("PORT", "8000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		CartTokenSecret: os.Getenv("CART_TOKEN_SECRET"),
		CartCachePath:   getenv("CART_CACHE_PATH", "cart-cache.db"),
		CartIdleTTL:     cartIdle,

		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminSessionTTL:   ttl,

		CheckoutMode:  mode,
		HandoffPhone:  os.Getenv("HANDOFF_PHONE"),
		HandoffFooter: getenv("HANDOFF_FOOTER", "Serving Avadi Area | Take-away Service"),

		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		NATSURL:     os.Getenv("NATS_URL"),

		R2Endpoint:      os.Getenv("R2_ENDPOINT"),
		R2AccessKey:     os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:     os.Getenv("R2_SECRET_KEY"),
		R2Bucket:        os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
