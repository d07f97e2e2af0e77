package memory

import (
	"context"

	"petclinic/internal/domain/clinic"
)

type visitRepo struct {
	s *store
}

func (r *visitRepo) FindByID(ctx context.Context, id int) (*clinic.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.visits[id]
	if !ok {
		return nil, nil
	}
	return &clinic.Visit{ID: v.ID, PetID: v.PetID, Date: v.Date, Description: v.Description}, nil
}

// FindByPetID devuelve las visitas ordenadas por fecha.
func (r *visitRepo) FindByPetID(ctx context.Context, petID int) ([]*clinic.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.visitsOf(petID), nil
}

func (r *visitRepo) Save(ctx context.Context, v *clinic.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[v.PetID]; !ok {
		return unknownRef("pet", v.PetID)
	}
	if v.IsNew() {
		v.ID = r.s.nextID("visits")
	} else if _, ok := r.s.visits[v.ID]; !ok {
		return clinic.ErrNotFound
	}
	r.s.visits[v.ID] = visitRow{ID: v.ID, PetID: v.PetID, Date: v.Date, Description: v.Description}
	return nil
}

func (r *visitRepo) Delete(ctx context.Context, v *clinic.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v == nil {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.visits[v.ID]; !ok {
		return clinic.ErrNotFound
	}
	delete(r.s.visits, v.ID)
	return nil
}
