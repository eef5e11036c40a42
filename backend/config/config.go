package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	JWTSecret     string
	StorageDriver string // memory, sqlite or postgres
	StoragePath   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	TutorBaseURL  string
	TutorAPIKey   string
	TutorModel    string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		StorageDriver: getEnv("STORAGE_DRIVER", "sqlite"),
		StoragePath:   getEnv("STORAGE_PATH", "mylegs.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "mylegs"),
		TutorBaseURL:  getEnv("TUTOR_BASE_URL", "https://generativelanguage.googleapis.com"),
		TutorAPIKey:   getEnv("TUTOR_API_KEY", ""),
		TutorModel:    getEnv("TUTOR_MODEL", "gemini-3-flash-preview"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
