package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	FrontendURL string

	RestaurantName string
	ContactInbox   string

	GoogleProject  string
	StorageBucket  string
	GoogleClientID string

	JWTSecret string
	JWTExpiry time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		RestaurantName: getEnv("RESTAURANT_NAME", "Golden Wok"),
		ContactInbox:   getEnv("EMAIL_TO", ""),

		GoogleProject:  getEnv("GOOGLE_CLOUD_PROJECT", ""),
		StorageBucket:  getEnv("STORAGE_BUCKET", ""),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry: time.Duration(getEnvAsInt64("JWT_EXPIRY", 30*24*60*60)) * time.Second,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       int(getEnvAsInt64("REDIS_DB", 0)),

		SMTPHost:     getEnv("EMAIL_HOST", ""),
		SMTPPort:     int(getEnvAsInt64("EMAIL_PORT", 587)),
		SMTPUser:     getEnv("EMAIL_USER", ""),
		SMTPPassword: getEnv("EMAIL_PASS", ""),
	}

	if config.ContactInbox == "" {
		config.ContactInbox = config.SMTPUser
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
