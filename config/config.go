package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port          string
	Env           string
	SessionSecret string

	// Commerce backend (source of truth for products/transactions/deliveries)
	BackendBaseURL string
	BackendAPIKey  string

	// Payment gateway
	GatewayBaseURL         string
	GatewayPublicKey       string
	GatewayPrivateKey      string
	GatewayIntegritySecret string

	// Demo customer used when no customer is registered in the session
	DemoCustomerID    string
	DemoCustomerName  string
	DemoCustomerEmail string
	DemoCustomerPhone string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		SessionSecret: getEnv("SESSION_SECRET", "checkout-session-secret"),

		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:9000"),
		BackendAPIKey:  os.Getenv("BACKEND_API_KEY"),

		GatewayBaseURL:         os.Getenv("GATEWAY_BASE_URL"),
		GatewayPublicKey:       os.Getenv("GATEWAY_PUBLIC_KEY"),
		GatewayPrivateKey:      os.Getenv("GATEWAY_PRIVATE_KEY"),
		GatewayIntegritySecret: os.Getenv("GATEWAY_INTEGRITY_SECRET"),

		DemoCustomerID:    getEnv("DEMO_CUSTOMER_ID", "8690975e-02f5-42cc-9df1-b3f66febb094"),
		DemoCustomerName:  getEnv("DEMO_CUSTOMER_NAME", "Cliente DEMO"),
		DemoCustomerEmail: getEnv("DEMO_CUSTOMER_EMAIL", "demo@example.com"),
		DemoCustomerPhone: getEnv("DEMO_CUSTOMER_PHONE", "+573001234567"),
	}

	if config.GatewayBaseURL == "" {
		return nil, fmt.Errorf("GATEWAY_BASE_URL is required")
	}
	if config.GatewayPublicKey == "" || config.GatewayPrivateKey == "" {
		return nil, fmt.Errorf("GATEWAY_PUBLIC_KEY and GATEWAY_PRIVATE_KEY are required")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
