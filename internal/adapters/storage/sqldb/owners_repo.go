package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"petclinic/internal/domain/clinic"
)

type OwnerRepo struct {
	c *conn
}

var _ clinic.OwnerRepository = (*OwnerRepo)(nil)

func (r *OwnerRepo) FindAll(ctx context.Context) ([]*clinic.Owner, error) {
	return r.c.loadOwners(ctx, "1 = 1")
}

func (r *OwnerRepo) FindByID(ctx context.Context, id int) (*clinic.Owner, error) {
	owners, err := r.c.loadOwners(ctx, "o.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, nil
	}
	return owners[0], nil
}

func (r *OwnerRepo) FindByLastName(ctx context.Context, lastName string) ([]*clinic.Owner, error) {
	return r.c.loadOwners(ctx, `LOWER(o.last_name) LIKE ? ESCAPE '\'`, likePrefix(lastName))
}

// Save guarda solo los datos del owner; las mascotas se guardan con PetRepo.
func (r *OwnerRepo) Save(ctx context.Context, o *clinic.Owner) error {
	if o.IsNew() {
		id, err := r.c.insert(ctx, r.c.db, `
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES (?, ?, ?, ?, ?)`,
			o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
		if err != nil {
			return fmt.Errorf("insert owner: %w", err)
		}
		o.ID = id
		return nil
	}

	return r.c.update(ctx, r.c.db, `
		UPDATE owners
		SET first_name = ?, last_name = ?, address = ?, city = ?, telephone = ?
		WHERE id = ?`,
		o.FirstName, o.LastName, o.Address, o.City, o.Telephone, o.ID)
}

// Delete borra al owner, sus mascotas y las visitas de esas mascotas en una transacción.
func (r *OwnerRepo) Delete(ctx context.Context, o *clinic.Owner) error {
	if o == nil {
		return clinic.ErrNotFound
	}
	return r.c.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.c.exec(ctx, tx, `DELETE FROM visits WHERE pet_id IN (SELECT id FROM pets WHERE owner_id = ?)`, o.ID); err != nil {
			return fmt.Errorf("delete owner visits: %w", err)
		}
		if _, err := r.c.exec(ctx, tx, `DELETE FROM pets WHERE owner_id = ?`, o.ID); err != nil {
			return fmt.Errorf("delete owner pets: %w", err)
		}
		return r.c.update(ctx, tx, `DELETE FROM owners WHERE id = ?`, o.ID)
	})
}
