package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server struct {
		Port          string
		GinMode       string
		LogLevel      string
		TemplatesGlob string
	}

	Admin struct {
		Username string
		Password string
	}

	Session struct {
		Secret string
		TTL    time.Duration
	}

	Firebase struct {
		CredentialsFile string
		AppID           string // tenant override; empty means discover from credentials
	}

	Gemini struct {
		APIKey string
		Model  string
	}

	CORS struct {
		AllowOrigins string
		AllowMethods string
		AllowHeaders string
	}
}

// DefaultAppID is the tenant namespace used when neither the APP_ID override nor
// a project id from the credentials file is available.
const DefaultAppID = "smartcampus-default"

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")
	config.Server.LogLevel = getEnv("LOG_LEVEL", "info")
	config.Server.TemplatesGlob = getEnv("TEMPLATES_GLOB", "web/templates/*.html")

	config.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	config.Admin.Password = getEnv("ADMIN_PASSWORD", "secure_password")

	config.Session.Secret = getEnv("SESSION_SECRET", "dev-session-secret-change")
	config.Session.TTL = getEnvAsDuration("SESSION_TTL", 12*time.Hour)

	config.Firebase.CredentialsFile = getEnv("FIREBASE_CREDENTIALS_FILE", "firebase-service-account.json")
	config.Firebase.AppID = getEnv("APP_ID", "")

	config.Gemini.APIKey = getEnv("GEMINI_API_KEY", "")
	config.Gemini.Model = getEnv("GEMINI_MODEL", "gemini-2.5-flash")

	config.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
