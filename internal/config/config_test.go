package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, noEnv)
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.JWTSecret != defaultJWTSecret {
		t.Errorf("expected default jwt secret %q, got %q", defaultJWTSecret, cfg.JWTSecret)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Errorf("expected default token ttl %v, got %v", defaultTokenTTL, cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Errorf("expected default upload limit %d, got %d", defaultMaxUploadBytes, cfg.MaxUploadBytes)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":      ":9191",
		"JWT_SECRET":       "env-secret",
		"TOKEN_TTL":        "30m",
		"SHUTDOWN_TIMEOUT": "5s",
		"MAX_UPLOAD_BYTES": "1024",
	}

	cfg, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9191" {
		t.Errorf("expected run address :9191, got %q", cfg.RunAddress)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("expected env jwt secret, got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected token ttl 30m, got %v", cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("expected upload limit 1024, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	args := []string{
		"-a", ":9090",
		"--jwt-secret", "flag-secret",
		"--token-ttl", "45m",
		"--shutdown-timeout", "20s",
		"--max-upload", "2048",
	}

	cfg, err := load(args, noEnv)
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.JWTSecret != "flag-secret" {
		t.Errorf("expected jwt secret override, got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 45*time.Minute {
		t.Errorf("expected token ttl 45m, got %v", cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != 20*time.Second {
		t.Errorf("expected shutdown timeout 20s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxUploadBytes != 2048 {
		t.Errorf("expected upload limit 2048, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	_, err := load([]string{"--token-ttl", "bad"}, noEnv)
	if err == nil || !strings.Contains(err.Error(), "invalid token ttl") {
		t.Fatalf("expected token ttl error, got %v", err)
	}

	_, err = load([]string{"--shutdown-timeout", "bad"}, noEnv)
	if err == nil || !strings.Contains(err.Error(), "invalid shutdown timeout") {
		t.Fatalf("expected shutdown timeout error, got %v", err)
	}

	_, err = load([]string{"--unknown-flag"}, noEnv)
	if err == nil || !strings.Contains(err.Error(), "parse flags") {
		t.Fatalf("expected flag parse error, got %v", err)
	}
}

func TestLoadJWTSecretFile(t *testing.T) {
	dir := t.TempDir()
	secretFile := filepath.Join(dir, "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	env := map[string]string{"JWT_SECRET_FILE": secretFile}
	cfg, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("expected secret from file, got %q", cfg.JWTSecret)
	}

	env["JWT_SECRET_FILE"] = filepath.Join(dir, "missing")
	if _, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}); err == nil {
		t.Fatal("expected error for missing secret file")
	}
}

func TestLoadNonPositiveFallbacks(t *testing.T) {
	cfg, err := load([]string{"--token-ttl", "0s", "--shutdown-timeout", "0s", "--max-upload", "-1"}, noEnv)
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Errorf("expected default token ttl fallback, got %v", cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout fallback, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Errorf("expected default upload limit fallback, got %d", cfg.MaxUploadBytes)
	}
}
