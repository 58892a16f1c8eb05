package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// fallbackSecret keeps local development working without a .env file.
// Production refuses to start on it.
const fallbackSecret = "secret"

type Config struct {
	Port        string
	JWTSecret   string
	Environment string
}

func Load() (*Config, error) {
	// Load .env when present; plain environment variables otherwise.
	if err := godotenv.Load(".env"); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Environment: os.Getenv("ENV"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required but not set")
		}
		log.Println("⚠️  JWT_SECRET not set, using development fallback")
		cfg.JWTSecret = fallbackSecret
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
