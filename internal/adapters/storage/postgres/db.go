package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"petclinic/internal/adapters/storage/sqldb"
	"petclinic/internal/domain/clinic"

	_ "github.com/jackc/pgx/v5/stdlib" // registra el driver "pgx" en database/sql
)

// Open abre un pool a Postgres usando pgx (database/sql) y deja el schema listo.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := sqldb.EnsureSchema(ctx, db, sqldb.Postgres); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func NewRepositories(db *sql.DB) clinic.Repositories {
	return sqldb.NewRepositories(db, sqldb.Postgres)
}
