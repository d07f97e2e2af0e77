package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Tablas del modelo clínico. %[1]s es la definición de la columna id.
const schemaTemplate = `
CREATE TABLE IF NOT EXISTS types (
	id %[1]s,
	name VARCHAR(80) NOT NULL
);
CREATE TABLE IF NOT EXISTS specialties (
	id %[1]s,
	name VARCHAR(80) NOT NULL
);
CREATE TABLE IF NOT EXISTS vets (
	id %[1]s,
	first_name VARCHAR(30) NOT NULL,
	last_name VARCHAR(30) NOT NULL
);
CREATE TABLE IF NOT EXISTS vet_specialties (
	vet_id INTEGER NOT NULL REFERENCES vets(id),
	specialty_id INTEGER NOT NULL REFERENCES specialties(id),
	PRIMARY KEY (vet_id, specialty_id)
);
CREATE TABLE IF NOT EXISTS owners (
	id %[1]s,
	first_name VARCHAR(30) NOT NULL DEFAULT '',
	last_name VARCHAR(30) NOT NULL DEFAULT '',
	address VARCHAR(255) NOT NULL DEFAULT '',
	city VARCHAR(80) NOT NULL DEFAULT '',
	telephone VARCHAR(20) NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS owners_last_name ON owners (last_name);
CREATE TABLE IF NOT EXISTS pets (
	id %[1]s,
	name VARCHAR(30) NOT NULL,
	birth_date DATE,
	type_id INTEGER REFERENCES types(id),
	owner_id INTEGER REFERENCES owners(id)
);
CREATE INDEX IF NOT EXISTS pets_owner_id ON pets (owner_id);
CREATE TABLE IF NOT EXISTS visits (
	id %[1]s,
	pet_id INTEGER NOT NULL REFERENCES pets(id),
	visit_date DATE,
	description VARCHAR(255) NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS visits_pet_id ON visits (pet_id);
`

func Schema(d Dialect) string {
	idCol := "SERIAL PRIMARY KEY"
	if d == SQLite {
		idCol = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return fmt.Sprintf(schemaTemplate, idCol)
}

// EnsureSchema crea las tablas si no existen. No es un sistema de migraciones:
// solo deja la base lista para arrancar.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, stmt := range strings.Split(Schema(d), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema (%s): %w", d, err)
		}
	}
	return nil
}
