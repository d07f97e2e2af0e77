package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"petclinic/internal/adapters/storage/sqldb"
	"petclinic/internal/domain/clinic"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// MemoryPath abre una base efímera (tests, demos).
const MemoryPath = ":memory:"

// Open abre (o crea) la base SQLite en path y deja el schema listo.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = "petclinic.db"
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Una sola conexión: SQLite serializa escrituras y ":memory:" es por conexión.
	db.SetMaxOpenConns(1)

	// SQLite ignora los REFERENCES del schema salvo que se active por conexión.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := sqldb.EnsureSchema(ctx, db, sqldb.SQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func NewRepositories(db *sql.DB) clinic.Repositories {
	return sqldb.NewRepositories(db, sqldb.SQLite)
}
