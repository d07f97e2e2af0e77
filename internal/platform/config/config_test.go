package config

import (
	"errors"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != StorageMemory || cfg.Addr() != ":8080" || cfg.Seed {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.ReadTimeout != 5*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts: %#v", cfg)
	}
}

func TestFromLookup_DSNImpliesPostgres(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		"DB_DSN": "postgres://localhost/petclinic",
		"PORT":   "9090",
		"SEED":   "true",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != StoragePostgres || cfg.Addr() != ":9090" || !cfg.Seed {
		t.Fatalf("unexpected cfg: %#v", cfg)
	}
}

func TestFromLookup_ExplicitStorageWins(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		"DB_DSN":      "postgres://localhost/petclinic",
		"STORAGE":     "SQLite",
		"SQLITE_PATH": "/tmp/clinic.db",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != StorageSQLite || cfg.SQLitePath != "/tmp/clinic.db" {
		t.Fatalf("unexpected cfg: %#v", cfg)
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := []map[string]string{
		{"STORAGE": "postgres"},
		{"STORAGE": "cassandra"},
		{"PORT": "http"},
		{"SEED": "maybe"},
		{"HTTP_READ_TIMEOUT": "5"},
	}
	for _, env := range cases {
		_, err := fromLookup(lookupFrom(env))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("env %v: expected ErrInvalidConfig, got %v", env, err)
		}
	}
}
