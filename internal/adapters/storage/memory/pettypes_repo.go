package memory

import (
	"context"

	"petclinic/internal/domain/clinic"
)

type petTypeRepo struct {
	s *store
}

func (r *petTypeRepo) FindAll(ctx context.Context) ([]*clinic.PetType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*clinic.PetType, 0, len(r.s.petTypes))
	for _, id := range sortedKeys(r.s.petTypes) {
		out = append(out, r.s.petTypeOf(id))
	}
	return out, nil
}

func (r *petTypeRepo) FindByID(ctx context.Context, id int) (*clinic.PetType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.petTypeOf(id), nil
}

func (r *petTypeRepo) Save(ctx context.Context, t *clinic.PetType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t.IsNew() {
		t.ID = r.s.nextID("types")
	} else if _, ok := r.s.petTypes[t.ID]; !ok {
		return clinic.ErrNotFound
	}
	r.s.petTypes[t.ID] = clinic.PetType{ID: t.ID, Name: t.Name}
	return nil
}

// Delete también borra las mascotas de ese tipo (y sus visitas).
func (r *petTypeRepo) Delete(ctx context.Context, t *clinic.PetType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t == nil {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.petTypes[t.ID]; !ok {
		return clinic.ErrNotFound
	}
	for id, p := range r.s.pets {
		if p.TypeID == t.ID {
			r.s.deletePetLocked(id)
		}
	}
	delete(r.s.petTypes, t.ID)
	return nil
}
