package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}

// ConfigDuration reads a time.Duration from the environment, falling back
// when the variable is unset or unparsable.
func ConfigDuration(key string, fallback time.Duration) time.Duration {
	value := Config(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration for %s (%q), using default %s", key, value, fallback)
		return fallback
	}
	return d
}
