package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	MongoURI      string
	Database      string
	AllowedOrigin string
}

// Load reads the environment. MongoURI and Database have no fallback; a
// missing value surfaces from the first store operation, not here.
func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		MongoURI:      getenv("MONGODB_CONNECTION_URI", ""),
		Database:      getenv("DATABASE", ""),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "https://lopes-events.vercel.app"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
