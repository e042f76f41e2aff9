package config

import (
	"fmt"
	"os"
)

// Config collects every environment-derived setting the service needs. It is
// built once in main and handed to the pieces that need it; nothing reads the
// environment after startup.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	JWTSecret       string
	GeminiAPIKey    string
	AlphaVantageKey string

	AllowOrigins []string
}

// Load reads the environment into a Config. JWT_SECRET is the only hard
// requirement; a missing GEMINI_API_KEY or ALPHA_VANTAGE_API_KEY leaves the
// corresponding feature degraded, which the caller decides how to handle.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            envOr("PORT", "8000"),
		DBHost:          envOr("DB_HOST", "localhost"),
		DBUser:          envOr("DB_USER", "postgres"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          envOr("DB_NAME", "fintra"),
		DBPort:          envOr("DB_PORT", "5432"),
		RedisAddr:       envOr("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		AlphaVantageKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
