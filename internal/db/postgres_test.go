package db

import (
	"testing"
	"time"

	"github.com/yigit/studentrecords/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "6543"
	cfg.Database.User = "records"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "records"
	cfg.Database.SSLMode = "require"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "30m"
	return cfg
}

func TestNewPoolConfig(t *testing.T) {
	poolConfig, err := newPoolConfig(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if poolConfig.ConnConfig.Host != "db.internal" || poolConfig.ConnConfig.Port != 6543 {
		t.Errorf("unexpected host/port: %s:%d", poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Port)
	}
	if poolConfig.ConnConfig.Database != "records" || poolConfig.ConnConfig.User != "records" {
		t.Errorf("unexpected database/user: %s/%s", poolConfig.ConnConfig.Database, poolConfig.ConnConfig.User)
	}
	if poolConfig.MaxConns != 8 || poolConfig.MinConns != 2 {
		t.Errorf("expected 8/2 conns, got %d/%d", poolConfig.MaxConns, poolConfig.MinConns)
	}
	if poolConfig.MaxConnLifetime != 30*time.Minute {
		t.Errorf("expected 30m lifetime, got %v", poolConfig.MaxConnLifetime)
	}
	if poolConfig.BeforeAcquire == nil {
		t.Error("expected a health check hook")
	}
}

func TestNewPoolConfig_ClampsMinConns(t *testing.T) {
	cfg := testConfig()
	cfg.Database.MaxIdleConns = 50

	poolConfig, err := newPoolConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if poolConfig.MinConns != poolConfig.MaxConns {
		t.Errorf("expected min conns clamped to %d, got %d", poolConfig.MaxConns, poolConfig.MinConns)
	}
}

func TestNewPoolConfig_BadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "forever"

	if _, err := newPoolConfig(cfg); err == nil {
		t.Error("expected error for invalid lifetime")
	}
}
