package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petclinic/internal/domain/clinic"
)

type PetTypeRepo struct {
	c *conn
}

var _ clinic.PetTypeRepository = (*PetTypeRepo)(nil)

func (r *PetTypeRepo) FindAll(ctx context.Context) ([]*clinic.PetType, error) {
	rows, err := r.c.query(ctx, r.c.db, `SELECT id, name FROM types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select types: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*clinic.PetType, 0)
	for rows.Next() {
		var t clinic.PetType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan type: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *PetTypeRepo) FindByID(ctx context.Context, id int) (*clinic.PetType, error) {
	var t clinic.PetType
	err := r.c.queryRow(ctx, r.c.db, `SELECT id, name FROM types WHERE id = ?`, id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select type: %w", err)
	}
	return &t, nil
}

func (r *PetTypeRepo) Save(ctx context.Context, t *clinic.PetType) error {
	if t.IsNew() {
		id, err := r.c.insert(ctx, r.c.db, `INSERT INTO types (name) VALUES (?)`, t.Name)
		if err != nil {
			return fmt.Errorf("insert type: %w", err)
		}
		t.ID = id
		return nil
	}
	return r.c.update(ctx, r.c.db, `UPDATE types SET name = ? WHERE id = ?`, t.Name, t.ID)
}

// Delete arrastra las mascotas de ese tipo y sus visitas.
func (r *PetTypeRepo) Delete(ctx context.Context, t *clinic.PetType) error {
	if t == nil {
		return clinic.ErrNotFound
	}
	return r.c.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.c.exec(ctx, tx, `DELETE FROM visits WHERE pet_id IN (SELECT id FROM pets WHERE type_id = ?)`, t.ID); err != nil {
			return fmt.Errorf("delete type visits: %w", err)
		}
		if _, err := r.c.exec(ctx, tx, `DELETE FROM pets WHERE type_id = ?`, t.ID); err != nil {
			return fmt.Errorf("delete type pets: %w", err)
		}
		return r.c.update(ctx, tx, `DELETE FROM types WHERE id = ?`, t.ID)
	})
}
