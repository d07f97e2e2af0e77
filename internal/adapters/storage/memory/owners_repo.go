package memory

import (
	"context"
	"strings"

	"petclinic/internal/domain/clinic"
)

type ownerRepo struct {
	s *store
}

func (r *ownerRepo) FindAll(ctx context.Context) ([]*clinic.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*clinic.Owner, 0, len(r.s.owners))
	for _, id := range sortedKeys(r.s.owners) {
		out = append(out, r.s.buildOwner(r.s.owners[id]))
	}
	return out, nil
}

func (r *ownerRepo) FindByID(ctx context.Context, id int) (*clinic.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.owners[id]
	if !ok {
		return nil, nil
	}
	return r.s.buildOwner(row), nil
}

// FindByLastName filtra por prefijo, sin distinguir mayúsculas.
func (r *ownerRepo) FindByLastName(ctx context.Context, lastName string) ([]*clinic.Owner, error) {
	prefix := strings.ToLower(strings.TrimSpace(lastName))

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*clinic.Owner, 0)
	for _, id := range sortedKeys(r.s.owners) {
		row := r.s.owners[id]
		if strings.HasPrefix(strings.ToLower(row.LastName), prefix) {
			out = append(out, r.s.buildOwner(row))
		}
	}
	return out, nil
}

func (r *ownerRepo) Save(ctx context.Context, o *clinic.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if o.IsNew() {
		o.ID = r.s.nextID("owners")
	} else if _, ok := r.s.owners[o.ID]; !ok {
		return clinic.ErrNotFound
	}

	r.s.owners[o.ID] = ownerRow{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
	return nil
}

// Delete borra al owner junto con sus mascotas y las visitas de esas mascotas.
func (r *ownerRepo) Delete(ctx context.Context, o *clinic.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if o == nil {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.owners[o.ID]; !ok {
		return clinic.ErrNotFound
	}
	for id, p := range r.s.pets {
		if p.OwnerID == o.ID {
			r.s.deletePetLocked(id)
		}
	}
	delete(r.s.owners, o.ID)
	return nil
}
