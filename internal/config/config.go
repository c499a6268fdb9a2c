package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment,
// loaded once at startup and passed down explicitly.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	JWTSecret     string
	TokenTTL      time.Duration
}

const defaultTokenTTL = 7 * 24 * time.Hour

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		Port:          os.Getenv("API_PORT"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      defaultTokenTTL,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, errors.New("invalid TOKEN_TTL: " + ttl)
		}
		cfg.TokenTTL = d
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not configured")
	}
	if cfg.MongoDatabase == "" {
		return nil, errors.New("MONGO_DATABASE is not configured")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return cfg, nil
}
