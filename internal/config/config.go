package config

import "os"

// Config holds the service configuration, loaded from the environment
type Config struct {
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	HTTPPort       string
	CatalogVersion string
}

// Load reads configuration from the environment with local defaults
func Load() *Config {
	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "nutriplan"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:       getEnv("PORT", "8080"),
		CatalogVersion: getEnv("CATALOG_VERSION", "v1"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
