package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Token       string
	AdminUserID int64
	DatabaseURL string
	UsersFile   string
	MetricsAddr string
	ServiceName string
}

var (
	configInstance *Config
	configOnce     sync.Once
)

func LoadConfig() *Config {
	configOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}

		configInstance = &Config{
			Token:       os.Getenv("TELEGRAM_TOKEN"),
			AdminUserID: getEnvAsInt64("ADMIN_USER_ID", 0),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			UsersFile:   getEnvOrDefault("USERS_FILE", "./data/users.json"),
			MetricsAddr: os.Getenv("METRICS_ADDR"),
			ServiceName: os.Getenv("SERVICE_NAME"),
		}
	})
	return configInstance
}

// GetConfig returns the current config singleton (nil if not yet loaded).
func GetConfig() *Config {
	return configInstance
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
