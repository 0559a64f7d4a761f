package config

import (
	"testing"
	"time"
)

func TestNormalizeAPIBase(t *testing.T) {
	cases := map[string]string{
		"":                          "/api",
		"http://localhost:8080":     "http://localhost:8080/api",
		"http://localhost:8080/":    "http://localhost:8080/api",
		"https://kino.example/api":  "https://kino.example/api",
		"https://kino.example/api/": "https://kino.example/api",
		"  https://kino.example  ":  "https://kino.example/api",
	}
	for in, want := range cases {
		if got := NormalizeAPIBase(in); got != want {
			t.Fatalf("NormalizeAPIBase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KINO_API_URL", "https://kino.example")
	t.Setenv("KINO_REQUEST_TIMEOUT_SEC", "5")
	t.Setenv("KINO_MAX_ATTEMPTS", "not-a-number")
	t.Setenv("KINO_LANG", "en")
	t.Setenv("KINO_CONFIG_DIR", "/tmp/kino-test")

	cfg := Load()
	if cfg.APIBaseURL != "https://kino.example/api" {
		t.Fatalf("unexpected api base: %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.RequestTimeout)
	}
	if cfg.MaxAttempts != 1 {
		t.Fatalf("expected default attempts for invalid value, got %d", cfg.MaxAttempts)
	}
	if cfg.Language != "en" {
		t.Fatalf("unexpected language: %s", cfg.Language)
	}
	if cfg.ConfigDir != "/tmp/kino-test" {
		t.Fatalf("unexpected config dir: %s", cfg.ConfigDir)
	}
}
