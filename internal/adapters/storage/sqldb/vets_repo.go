package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petclinic/internal/domain/clinic"
)

type VetRepo struct {
	c *conn
}

var _ clinic.VetRepository = (*VetRepo)(nil)

func (r *VetRepo) FindAll(ctx context.Context) ([]*clinic.Vet, error) {
	return r.load(ctx, "1 = 1")
}

func (r *VetRepo) FindByID(ctx context.Context, id int) (*clinic.Vet, error) {
	vets, err := r.load(ctx, "v.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(vets) == 0 {
		return nil, nil
	}
	return vets[0], nil
}

func (r *VetRepo) load(ctx context.Context, filter string, args ...any) ([]*clinic.Vet, error) {
	rows, err := r.c.query(ctx, r.c.db, `
		SELECT v.id, v.first_name, v.last_name
		FROM vets v
		WHERE `+filter+`
		ORDER BY v.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("select vets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	vets := make([]*clinic.Vet, 0)
	byID := map[int]*clinic.Vet{}
	for rows.Next() {
		var v clinic.Vet
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			return nil, fmt.Errorf("scan vet: %w", err)
		}
		v.Specialties = make([]*clinic.Specialty, 0)
		vets = append(vets, &v)
		byID[v.ID] = &v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(vets) == 0 {
		return vets, nil
	}

	srows, err := r.c.query(ctx, r.c.db, `
		SELECT vs.vet_id, s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		WHERE vs.vet_id IN (SELECT v.id FROM vets v WHERE `+filter+`)
		ORDER BY vs.vet_id, s.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("select vet specialties: %w", err)
	}
	defer func() { _ = srows.Close() }()

	for srows.Next() {
		var (
			vetID int
			sp    clinic.Specialty
		)
		if err := srows.Scan(&vetID, &sp.ID, &sp.Name); err != nil {
			return nil, fmt.Errorf("scan vet specialty: %w", err)
		}
		if v, ok := byID[vetID]; ok {
			v.AddSpecialty(&sp)
		}
	}
	return vets, srows.Err()
}

// Save reescribe las especialidades del vet dentro de la misma transacción.
func (r *VetRepo) Save(ctx context.Context, v *clinic.Vet) error {
	return r.c.inTx(ctx, func(tx *sql.Tx) error {
		for _, sp := range v.Specialties {
			if sp == nil {
				continue
			}
			if err := r.c.checkRef(ctx, tx, "specialties", sp.ID); err != nil {
				return err
			}
		}

		if v.IsNew() {
			id, err := r.c.insert(ctx, tx, `INSERT INTO vets (first_name, last_name) VALUES (?, ?)`, v.FirstName, v.LastName)
			if err != nil {
				return fmt.Errorf("insert vet: %w", err)
			}
			v.ID = id
		} else {
			if err := r.c.update(ctx, tx, `UPDATE vets SET first_name = ?, last_name = ? WHERE id = ?`, v.FirstName, v.LastName, v.ID); err != nil {
				return err
			}
			if _, err := r.c.exec(ctx, tx, `DELETE FROM vet_specialties WHERE vet_id = ?`, v.ID); err != nil {
				return fmt.Errorf("clear vet specialties: %w", err)
			}
		}

		seen := map[int]bool{}
		for _, sp := range v.Specialties {
			if sp == nil || seen[sp.ID] {
				continue
			}
			seen[sp.ID] = true
			if _, err := r.c.exec(ctx, tx, `INSERT INTO vet_specialties (vet_id, specialty_id) VALUES (?, ?)`, v.ID, sp.ID); err != nil {
				return fmt.Errorf("insert vet specialty: %w", err)
			}
		}
		return nil
	})
}

func (r *VetRepo) Delete(ctx context.Context, v *clinic.Vet) error {
	if v == nil {
		return clinic.ErrNotFound
	}
	return r.c.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.c.exec(ctx, tx, `DELETE FROM vet_specialties WHERE vet_id = ?`, v.ID); err != nil {
			return fmt.Errorf("delete vet specialties: %w", err)
		}
		return r.c.update(ctx, tx, `DELETE FROM vets WHERE id = ?`, v.ID)
	})
}

type SpecialtyRepo struct {
	c *conn
}

var _ clinic.SpecialtyRepository = (*SpecialtyRepo)(nil)

func (r *SpecialtyRepo) FindAll(ctx context.Context) ([]*clinic.Specialty, error) {
	rows, err := r.c.query(ctx, r.c.db, `SELECT id, name FROM specialties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select specialties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*clinic.Specialty, 0)
	for rows.Next() {
		var sp clinic.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		out = append(out, &sp)
	}
	return out, rows.Err()
}

func (r *SpecialtyRepo) FindByID(ctx context.Context, id int) (*clinic.Specialty, error) {
	var sp clinic.Specialty
	err := r.c.queryRow(ctx, r.c.db, `SELECT id, name FROM specialties WHERE id = ?`, id).Scan(&sp.ID, &sp.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select specialty: %w", err)
	}
	return &sp, nil
}

func (r *SpecialtyRepo) Save(ctx context.Context, sp *clinic.Specialty) error {
	if sp.IsNew() {
		id, err := r.c.insert(ctx, r.c.db, `INSERT INTO specialties (name) VALUES (?)`, sp.Name)
		if err != nil {
			return fmt.Errorf("insert specialty: %w", err)
		}
		sp.ID = id
		return nil
	}
	return r.c.update(ctx, r.c.db, `UPDATE specialties SET name = ? WHERE id = ?`, sp.Name, sp.ID)
}

func (r *SpecialtyRepo) Delete(ctx context.Context, sp *clinic.Specialty) error {
	if sp == nil {
		return clinic.ErrNotFound
	}
	return r.c.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.c.exec(ctx, tx, `DELETE FROM vet_specialties WHERE specialty_id = ?`, sp.ID); err != nil {
			return fmt.Errorf("unlink specialty: %w", err)
		}
		return r.c.update(ctx, tx, `DELETE FROM specialties WHERE id = ?`, sp.ID)
	})
}
