package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dlitvin/warehouse-insights/internal/analytics"
)

// Config holds all configuration for the CLI. Every field has a working
// default so the tool runs with no environment at all.
type Config struct {
	// DataFile is the path of the JSON receipt export.
	DataFile string
	// OutputDir is where report artifacts (CSV, charts) are written.
	OutputDir string
	// TopLimit caps the product ranking length.
	TopLimit int
}

// Load loads configuration from environment variables, reading a .env file
// first if one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only.")
	}

	return &Config{
		DataFile:  getEnv("INSIGHTS_DATA_FILE", "transactions.json"),
		OutputDir: getEnv("INSIGHTS_OUTPUT_DIR", "reports"),
		TopLimit:  getEnvInt("INSIGHTS_TOP_LIMIT", analytics.DefaultTopProductsLimit),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
