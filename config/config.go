package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. It is built
// once in main and handed down; nothing reads os.Getenv after Load returns.
type Config struct {
	ListenAddr    string
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration
	JWTSecret     string
	KafkaBroker   string
	KafkaTopic    string
	AdminEmail    string
	AdminPassword string
}

// Load reads the .env file for the current APP_ENV (if one exists) and
// validates the result. MONGODB_URI and JWT_SECRET have no defaults: a
// deployment that forgets them should fail at startup, not limp along on
// embedded credentials.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") == "production" {
		_ = godotenv.Load(".env.production")
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		ListenAddr:    ":" + envOr("PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: envOr("MONGODB_DATABASE", "logitrust"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    envOr("KAFKA_TOPIC", "shipment.events"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	timeout, err := time.ParseDuration(envOr("MONGO_TIMEOUT", "10") + "s")
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_TIMEOUT: %w", err)
	}
	cfg.MongoTimeout = timeout

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
