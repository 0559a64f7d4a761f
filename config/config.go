package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	appDirName     = "kino-cli"
	defaultAPIBase = "http://localhost:8080"
)

// Config holds runtime settings resolved from the environment.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	MaxAttempts    int

	Language string

	LogLevel  string
	LogFormat string
	LogFile   string

	ConfigDir   string
	DownloadDir string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:     NormalizeAPIBase(getEnv("KINO_API_URL", defaultAPIBase)),
		RequestTimeout: time.Duration(getEnvInt("KINO_REQUEST_TIMEOUT_SEC", 30)) * time.Second,
		MaxAttempts:    getEnvInt("KINO_MAX_ATTEMPTS", 1),

		Language: getEnv("KINO_LANG", ""),

		LogLevel:  getEnv("KINO_LOG_LEVEL", "info"),
		LogFormat: getEnv("KINO_LOG_FORMAT", "text"),
		LogFile:   getEnv("KINO_LOG_FILE", defaultLogFile()),

		ConfigDir:   getEnv("KINO_CONFIG_DIR", defaultConfigDir()),
		DownloadDir: getEnv("KINO_DOWNLOAD_DIR", "."),
	}
}

// NormalizeAPIBase trims a trailing slash and makes sure the base ends in /api.
func NormalizeAPIBase(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "/api"
	}
	if strings.HasSuffix(trimmed, "/api") {
		return trimmed
	}
	return trimmed + "/api"
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(dir, appDirName)
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDirName+".log")
	}
	return filepath.Join(dir, appDirName, "kino.log")
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}
