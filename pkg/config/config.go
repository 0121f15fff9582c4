package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	MongoURI          string
	DatabaseName      string
	AccessTokenSecret string
	StripeSecretKey   string
}

func Load() *Config {
	// Load environment variables from .env file when present
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "5000"),
		Env:               getEnv("ENV", "development"),
		MongoURI:          getEnv("MONGO_URI", ""),
		DatabaseName:      getEnv("MONGO_DB", "wonderBangladesh"),
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeSecretKey:   getEnv("STRIPE_SECRET_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
