package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	MongoURI     string
	DatabaseName string
	Port         string
	RedxAPIToken string
	RedxBaseURL  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := &Config{
		MongoURI:     os.Getenv("MONGO_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		Port:         os.Getenv("PORT"),
		RedxAPIToken: os.Getenv("REDX_API_TOKEN"),
		RedxBaseURL:  os.Getenv("REDX_BASE_URL"),
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "Trendy_management"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.RedxBaseURL == "" {
		cfg.RedxBaseURL = "https://openapi.redx.com.bd/v1.0.0-beta"
	}

	return cfg
}
