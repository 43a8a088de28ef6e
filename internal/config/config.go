package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TasksPort string
	LogLevel  string
}

// Load reads configuration from the environment, seeded from a .env file
// when one is present next to the binary.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TasksPort: getEnv("TASKS_PORT", "8082"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
