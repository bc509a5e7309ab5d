package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
// It covers both binaries: the skygend service and the skygen client app.
type Config struct {
	AppEnv           string
	Port             string
	DatabaseURL      string
	StoragePath      string
	PublicBaseURL    string
	RenderDelay      time.Duration
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int

	// Client-side settings. APIBaseURL empty means the client uses its
	// built-in production endpoint.
	APIBaseURL  string
	DownloadDir string
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StoragePath:      getEnv("STORAGE_PATH", "./storage"),
		PublicBaseURL:    os.Getenv("PUBLIC_BASE_URL"),
		RenderDelay:      time.Millisecond * time.Duration(getEnvInt("RENDER_DELAY_MS", 3000)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		APIBaseURL:       os.Getenv("SKYGEN_API_BASE_URL"),
		DownloadDir:      getEnv("SKYGEN_DOWNLOAD_DIR", "./downloads"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
