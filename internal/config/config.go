package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Location    *time.Location
	DataPath    string
	LogDir      string
	ReportDir   string
	OpenBrowser bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve the timezone used for daily bucketing
	loc := time.Local
	if name := getEnv("MADASH_TIMEZONE", ""); name != "" {
		parsed, err := time.LoadLocation(name)
		if err != nil {
			log.Warn().Err(err).Str("timezone", name).Msg("Invalid MADASH_TIMEZONE, falling back to local time")
		} else {
			loc = parsed
		}
	}

	// 4. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))
	reportDir := filepath.Join(dataPath, "reports")

	// Ensure directories exist
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", reportDir).Msg("Failed to create report directory")
	}

	cfg := &AppConfig{
		Location:    loc,
		DataPath:    dataPath,
		LogDir:      logDir,
		ReportDir:   reportDir,
		OpenBrowser: getEnvBool("MADASH_OPEN_BROWSER", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
