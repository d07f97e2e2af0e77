package memory

import (
	"context"

	"petclinic/internal/domain/clinic"
)

type vetRepo struct {
	s *store
}

func (r *vetRepo) FindAll(ctx context.Context) ([]*clinic.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*clinic.Vet, 0, len(r.s.vets))
	for _, id := range sortedKeys(r.s.vets) {
		out = append(out, r.s.buildVet(r.s.vets[id]))
	}
	return out, nil
}

func (r *vetRepo) FindByID(ctx context.Context, id int) (*clinic.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.vets[id]
	if !ok {
		return nil, nil
	}
	return r.s.buildVet(row), nil
}

func (r *vetRepo) Save(ctx context.Context, v *clinic.Vet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, sp := range v.Specialties {
		if sp == nil {
			continue
		}
		if _, ok := r.s.specialties[sp.ID]; !ok {
			return unknownRef("specialty", sp.ID)
		}
	}
	if v.IsNew() {
		v.ID = r.s.nextID("vets")
	} else if _, ok := r.s.vets[v.ID]; !ok {
		return clinic.ErrNotFound
	}

	ids := make([]int, 0, len(v.Specialties))
	seen := map[int]bool{}
	for _, sp := range v.Specialties {
		if sp != nil && !seen[sp.ID] {
			seen[sp.ID] = true
			ids = append(ids, sp.ID)
		}
	}
	r.s.vets[v.ID] = vetRow{ID: v.ID, FirstName: v.FirstName, LastName: v.LastName, SpecialtyIDs: ids}
	return nil
}

func (r *vetRepo) Delete(ctx context.Context, v *clinic.Vet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v == nil {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.vets[v.ID]; !ok {
		return clinic.ErrNotFound
	}
	delete(r.s.vets, v.ID)
	return nil
}

type specialtyRepo struct {
	s *store
}

func (r *specialtyRepo) FindAll(ctx context.Context) ([]*clinic.Specialty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*clinic.Specialty, 0, len(r.s.specialties))
	for _, id := range sortedKeys(r.s.specialties) {
		sp := r.s.specialties[id]
		out = append(out, &sp)
	}
	return out, nil
}

func (r *specialtyRepo) FindByID(ctx context.Context, id int) (*clinic.Specialty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sp, ok := r.s.specialties[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

func (r *specialtyRepo) Save(ctx context.Context, sp *clinic.Specialty) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sp.IsNew() {
		sp.ID = r.s.nextID("specialties")
	} else if _, ok := r.s.specialties[sp.ID]; !ok {
		return clinic.ErrNotFound
	}
	r.s.specialties[sp.ID] = clinic.Specialty{ID: sp.ID, Name: sp.Name}
	return nil
}

// Delete desvincula la especialidad de todos los vets antes de borrarla.
func (r *specialtyRepo) Delete(ctx context.Context, sp *clinic.Specialty) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sp == nil {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.specialties[sp.ID]; !ok {
		return clinic.ErrNotFound
	}
	for id, v := range r.s.vets {
		kept := v.SpecialtyIDs[:0:0]
		for _, sid := range v.SpecialtyIDs {
			if sid != sp.ID {
				kept = append(kept, sid)
			}
		}
		v.SpecialtyIDs = kept
		r.s.vets[id] = v
	}
	delete(r.s.specialties, sp.ID)
	return nil
}
