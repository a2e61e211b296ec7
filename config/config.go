package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDialect string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	JWTKey    string
	SaltRound int

	// Checkout provider: "midtrans" uses the Snap API, "http" posts to
	// CheckoutApiURL and expects a checkout_url back.
	PaymentProvider   string
	CheckoutApiURL    string
	CheckoutApiKey    string
	MidtransServerKey string

	SendgridApiKey string
	EmailSender    string
	AdminEmail     string

	FrontendBaseURL string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBDialect: getEnv("DB_DIALECT", "postgres"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBPass:    getEnv("DB_PASSWORD", ""),
		DBName:    getEnv("DB_NAME", "reinvent"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		PaymentProvider:   getEnv("PAYMENT_PROVIDER", "http"),
		CheckoutApiURL:    getEnv("CHECKOUT_API_URL", "https://checkout.example.com/v1/sessions"),
		CheckoutApiKey:    getEnv("CHECKOUT_API_KEY", ""),
		MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@reinvent.training"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@reinvent.training"),

		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT secret. Set JWT_SECRET_KEY in production.")
	}
}

// getEnv fetches an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt fetches an environment variable as an integer or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
