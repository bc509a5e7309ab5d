package infra

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "PORT", "DATABASE_URL", "STORAGE_PATH", "PUBLIC_BASE_URL",
		"RENDER_DELAY_MS", "HTTP_READ_TIMEOUT_SECONDS", "HTTP_WRITE_TIMEOUT_SECONDS",
		"HTTP_IDLE_TIMEOUT_SECONDS", "SKYGEN_API_BASE_URL", "SKYGEN_DOWNLOAD_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: %q", cfg.Port)
	}
	if cfg.PublicBaseURL != "http://localhost:8080" {
		t.Fatalf("PublicBaseURL mismatch: %q", cfg.PublicBaseURL)
	}
	if cfg.RenderDelay != 3*time.Second {
		t.Fatalf("RenderDelay mismatch: %v", cfg.RenderDelay)
	}
	if cfg.APIBaseURL != "" {
		t.Fatalf("APIBaseURL should default to empty, got %q", cfg.APIBaseURL)
	}
	if cfg.DownloadDir != "./downloads" {
		t.Fatalf("DownloadDir mismatch: %q", cfg.DownloadDir)
	}
}

func TestLoadConfigInheritsPortInPublicBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "1919")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.PublicBaseURL != "http://localhost:1919" {
		t.Fatalf("PublicBaseURL mismatch: %q", cfg.PublicBaseURL)
	}
}

func TestLoadConfigHonorsExplicitPublicBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("PUBLIC_BASE_URL", "https://img.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.PublicBaseURL != "https://img.example.com" {
		t.Fatalf("PublicBaseURL mismatch: %q", cfg.PublicBaseURL)
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-numeric PORT")
	}
}
