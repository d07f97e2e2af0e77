package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"petclinic/internal/adapters/storage/storagetest"
	"petclinic/internal/domain/clinic"
)

func TestSQLiteRepositories_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) clinic.Repositories {
		db, err := Open(context.Background(), MemoryPath)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		return NewRepositories(db)
	})
}

func TestOpen_FileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "petclinic.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repos := NewRepositories(db)
	cat := &clinic.PetType{Name: "cat"}
	if err := repos.PetTypes.Save(ctx, cat); err != nil {
		t.Fatalf("save type: %v", err)
	}
	_ = db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	got, err := NewRepositories(db).PetTypes.FindByID(ctx, cat.ID)
	if err != nil {
		t.Fatalf("find type: %v", err)
	}
	if got == nil || got.Name != "cat" {
		t.Fatalf("expected persisted type, got %#v", got)
	}
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var enabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", enabled)
	}

	// por fuera de los repos: la base misma tiene que rechazar la fila colgada
	if _, err := db.ExecContext(ctx, `INSERT INTO visits (pet_id, description) VALUES (4242, 'orphan')`); err == nil {
		t.Fatalf("expected foreign key violation for visit without pet")
	}
}
