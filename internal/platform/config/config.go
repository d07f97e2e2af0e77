package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Storage string

const (
	StorageMemory   Storage = "memory"
	StoragePostgres Storage = "postgres"
	StorageSQLite   Storage = "sqlite"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config agrupa todo lo que antes se leía suelto con os.Getenv (PORT, DB_DSN, ...).
type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Storage    Storage
	DBDSN      string
	SQLitePath string
	Seed       bool

	LogLevel  string
	LogFormat string
	AppName   string
}

func Default() Config {
	return Config{
		Port:         "8080",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		Storage:      StorageMemory,
		SQLitePath:   "petclinic.db",
		LogLevel:     "info",
		LogFormat:    "text",
		AppName:      "petclinic",
	}
}

// FromEnv arma la config desde variables de entorno:
// - PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT
// - STORAGE=memory|postgres|sqlite (si no viene y hay DB_DSN => postgres)
// - DB_DSN, SQLITE_PATH, SEED
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		cfg.Port = v
	}
	if v, ok := get("HTTP_READ_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: HTTP_READ_TIMEOUT: %v", ErrInvalidConfig, err)
		}
		cfg.ReadTimeout = d
	}
	if v, ok := get("HTTP_WRITE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: HTTP_WRITE_TIMEOUT: %v", ErrInvalidConfig, err)
		}
		cfg.WriteTimeout = d
	}

	if v, ok := get("DB_DSN"); ok {
		cfg.DBDSN = v
		cfg.Storage = StoragePostgres
	}
	if v, ok := get("STORAGE"); ok {
		cfg.Storage = Storage(strings.ToLower(v))
	}
	if v, ok := get("SQLITE_PATH"); ok {
		cfg.SQLitePath = v
	}
	if v, ok := get("SEED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: SEED: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = b
	}

	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := get("APP_NAME"); ok {
		cfg.AppName = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("%w: port is empty", ErrInvalidConfig)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("%w: port %q is not a number", ErrInvalidConfig, c.Port)
	}
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("%w: postgres storage requires DB_DSN", ErrInvalidConfig)
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite storage requires SQLITE_PATH", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, c.Storage)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
