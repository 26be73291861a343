package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	FirebaseProject    string
	ServiceAccountJSON string
	ServiceAccountPath string
	Environment        string
	Seed               int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", "./serviceAccountKey.json"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		Seed:               getEnvAsInt64("SEED", 0),
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
