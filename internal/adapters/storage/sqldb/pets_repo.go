package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"petclinic/internal/domain/clinic"
)

type PetRepo struct {
	c *conn
}

var _ clinic.PetRepository = (*PetRepo)(nil)

// FindAll devuelve las mascotas en orden de id; las de un mismo dueño comparten el Owner.
func (r *PetRepo) FindAll(ctx context.Context) ([]*clinic.Pet, error) {
	owners, err := r.c.loadOwners(ctx, "1 = 1")
	if err != nil {
		return nil, err
	}
	orphans, err := r.c.loadPets(ctx, "p.owner_id IS NULL")
	if err != nil {
		return nil, err
	}

	out := make([]*clinic.Pet, 0)
	for _, o := range owners {
		out = append(out, o.Pets...)
	}
	for _, lp := range orphans {
		out = append(out, lp.pet)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindByID devuelve la mascota dentro del grafo de su dueño.
func (r *PetRepo) FindByID(ctx context.Context, id int) (*clinic.Pet, error) {
	var ownerID sql.NullInt64
	err := r.c.queryRow(ctx, r.c.db, `SELECT owner_id FROM pets WHERE id = ?`, id).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select pet owner: %w", err)
	}

	if ownerID.Valid {
		owners, err := r.c.loadOwners(ctx, "o.id = ?", ownerID.Int64)
		if err != nil {
			return nil, err
		}
		if len(owners) > 0 {
			return owners[0].GetPetByID(id), nil
		}
	}

	pets, err := r.c.loadPets(ctx, "p.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(pets) == 0 {
		return nil, nil
	}
	return pets[0].pet, nil
}

func (r *PetRepo) Save(ctx context.Context, p *clinic.Pet) error {
	var typeID int
	if p.Type != nil {
		typeID = p.Type.ID
	}
	if typeID != 0 {
		if err := r.c.checkRef(ctx, r.c.db, "types", typeID); err != nil {
			return err
		}
	}
	if p.OwnerID() != 0 {
		if err := r.c.checkRef(ctx, r.c.db, "owners", p.OwnerID()); err != nil {
			return err
		}
	}

	if p.IsNew() {
		id, err := r.c.insert(ctx, r.c.db, `
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES (?, ?, ?, ?)`,
			p.Name, dateArg(p.BirthDate), nullInt(typeID), nullInt(p.OwnerID()))
		if err != nil {
			return fmt.Errorf("insert pet: %w", err)
		}
		p.ID = id
		return nil
	}

	return r.c.update(ctx, r.c.db, `
		UPDATE pets
		SET name = ?, birth_date = ?, type_id = ?, owner_id = ?
		WHERE id = ?`,
		p.Name, dateArg(p.BirthDate), nullInt(typeID), nullInt(p.OwnerID()), p.ID)
}

func (r *PetRepo) Delete(ctx context.Context, p *clinic.Pet) error {
	if p == nil {
		return clinic.ErrNotFound
	}
	return r.c.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.c.exec(ctx, tx, `DELETE FROM visits WHERE pet_id = ?`, p.ID); err != nil {
			return fmt.Errorf("delete pet visits: %w", err)
		}
		return r.c.update(ctx, tx, `DELETE FROM pets WHERE id = ?`, p.ID)
	})
}
