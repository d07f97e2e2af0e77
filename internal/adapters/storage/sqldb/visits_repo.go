package sqldb

import (
	"context"
	"fmt"

	"petclinic/internal/domain/clinic"
)

type VisitRepo struct {
	c *conn
}

var _ clinic.VisitRepository = (*VisitRepo)(nil)

func (r *VisitRepo) FindByID(ctx context.Context, id int) (*clinic.Visit, error) {
	visits, err := r.c.loadVisits(ctx, r.c.db, "v.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(visits) == 0 {
		return nil, nil
	}
	return visits[0], nil
}

func (r *VisitRepo) FindByPetID(ctx context.Context, petID int) ([]*clinic.Visit, error) {
	return r.c.loadVisits(ctx, r.c.db, "v.pet_id = ?", petID)
}

func (r *VisitRepo) Save(ctx context.Context, v *clinic.Visit) error {
	if err := r.c.checkRef(ctx, r.c.db, "pets", v.PetID); err != nil {
		return err
	}
	if v.IsNew() {
		id, err := r.c.insert(ctx, r.c.db, `
			INSERT INTO visits (pet_id, visit_date, description)
			VALUES (?, ?, ?)`,
			v.PetID, dateArg(v.Date), v.Description)
		if err != nil {
			return fmt.Errorf("insert visit: %w", err)
		}
		v.ID = id
		return nil
	}
	return r.c.update(ctx, r.c.db, `
		UPDATE visits SET pet_id = ?, visit_date = ?, description = ?
		WHERE id = ?`,
		v.PetID, dateArg(v.Date), v.Description, v.ID)
}

func (r *VisitRepo) Delete(ctx context.Context, v *clinic.Visit) error {
	if v == nil {
		return clinic.ErrNotFound
	}
	return r.c.update(ctx, r.c.db, `DELETE FROM visits WHERE id = ?`, v.ID)
}
