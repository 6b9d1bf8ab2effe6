package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	PublicDir          string
	DataFilePath       string
}

type DatabaseConfig struct {
	Connection string
}

type EventsConfig struct {
	InnovationViewedTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			PublicDir:          getEnv("PUBLIC_DIR", "./public"),
			DataFilePath:       getEnv("DATA_FILE_PATH", "data/innovations.json"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Events: EventsConfig{
			InnovationViewedTopic: getEnv("INNOVATION_VIEWED_TOPIC_NAME", "INNOVATION_VIEWED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
