package postgres

import (
	"context"
	"os"
	"testing"

	"petclinic/internal/adapters/storage/storagetest"
	"petclinic/internal/domain/clinic"
)

// Corre solo si hay una base disponible:
//
//	PETCLINIC_TEST_DB_DSN=postgres://localhost/petclinic_test?sslmode=disable go test ./...
func TestPostgresRepositories_Contract(t *testing.T) {
	dsn := os.Getenv("PETCLINIC_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("PETCLINIC_TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	storagetest.Run(t, func(t *testing.T) clinic.Repositories {
		if _, err := db.ExecContext(ctx, `TRUNCATE visits, pets, owners, vet_specialties, vets, specialties, types RESTART IDENTITY`); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return NewRepositories(db)
	})
}
