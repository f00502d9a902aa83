package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageModeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_MODE", "redis")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid STORAGE_MODE")
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_MODE", StoragePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE_MODE=postgres without DB_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_MODE", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("STANDINGS_WORKERS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageMode != StorageMemory {
		t.Fatalf("expected default storage mode %q, got %q", StorageMemory, cfg.StorageMode)
	}
	if cfg.CacheTTL != time.Minute {
		t.Fatalf("expected default cache ttl 60s, got %s", cfg.CacheTTL)
	}
	if cfg.StandingsWorkers != 8 {
		t.Fatalf("expected default standings workers 8, got %d", cfg.StandingsWorkers)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default http addr :8080, got %q", cfg.HTTPAddr)
	}
}

func TestLoad_WorkerBoundsValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CAREER_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for CAREER_WORKERS=0")
	}
}
