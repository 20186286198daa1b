package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.DBName != "coursehub" {
		t.Fatalf("expected default db name, got %s", cfg.Database.DBName)
	}
	if cfg.Dashboard.FetchTimeout != "15s" {
		t.Fatalf("expected default fetch timeout, got %s", cfg.Dashboard.FetchTimeout)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("expected redis disabled by default")
	}
}

func TestLoadConfigFileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
database:
  host: db.internal
jwt:
  secret: from-file
redis:
  enabled: true
  addr: redis:6379
dashboard:
  fetch_timeout: 5s
`)
	t.Setenv("SERVER_PORT", "18080")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "18080" {
		t.Fatalf("expected SERVER_PORT override, got %s", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Fatalf("expected host from file, got %s", cfg.Database.Host)
	}
	if cfg.JWT.Secret != "from-file" {
		t.Fatalf("expected secret from file, got %s", cfg.JWT.Secret)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if cfg.Dashboard.FetchTimeout != "5s" {
		t.Fatalf("expected fetch timeout from file, got %s", cfg.Dashboard.FetchTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected LOG_LEVEL override, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfigRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error without JWT secret")
	}
}

func TestLoadConfigRejectsBadFetchTimeout(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "soon")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for invalid fetch timeout")
	}
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "h"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "d"
	if got := cfg.GetPostgresConnectionString(); got != "postgres://u:p@h:5432/d?sslmode=disable" {
		t.Fatalf("unexpected connection string %s", got)
	}
}
