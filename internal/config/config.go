package config

import (
	"os"
	"time"
)

type Config struct {
	Port      string
	DBUrl     string
	JWTSecret string
	JWTExpiry time.Duration
}

func LoadConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	expiry := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			expiry = d
		}
	}

	return &Config{
		Port:      port,
		DBUrl:     os.Getenv("DATABASE_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: expiry,
	}
}
