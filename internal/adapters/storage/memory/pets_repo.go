package memory

import (
	"context"

	"petclinic/internal/domain/clinic"
)

type petRepo struct {
	s *store
}

// FindAll devuelve todas las mascotas; las de un mismo dueño comparten la misma instancia de Owner.
func (r *petRepo) FindAll(ctx context.Context) ([]*clinic.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	owners := map[int]*clinic.Owner{}
	out := make([]*clinic.Pet, 0, len(r.s.pets))
	for _, id := range sortedKeys(r.s.pets) {
		p := r.petLocked(r.s.pets[id], owners)
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *petRepo) FindByID(ctx context.Context, id int) (*clinic.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.pets[id]
	if !ok {
		return nil, nil
	}
	return r.petLocked(row, map[int]*clinic.Owner{}), nil
}

// petLocked devuelve la mascota dentro del grafo de su dueño, para que
// p.Owner.Pets contenga a p.
func (r *petRepo) petLocked(row petRow, owners map[int]*clinic.Owner) *clinic.Pet {
	if row.OwnerID == 0 {
		return r.s.buildPet(row)
	}
	o, ok := owners[row.OwnerID]
	if !ok {
		orow, exists := r.s.owners[row.OwnerID]
		if !exists {
			return r.s.buildPet(row)
		}
		o = r.s.buildOwner(orow)
		owners[row.OwnerID] = o
	}
	return o.GetPetByID(row.ID)
}

func (r *petRepo) Save(ctx context.Context, p *clinic.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	typeID := 0
	if p.Type != nil {
		typeID = p.Type.ID
	}
	if _, ok := r.s.petTypes[typeID]; typeID != 0 && !ok {
		return unknownRef("pet type", typeID)
	}
	if _, ok := r.s.owners[p.OwnerID()]; p.OwnerID() != 0 && !ok {
		return unknownRef("owner", p.OwnerID())
	}

	if p.IsNew() {
		p.ID = r.s.nextID("pets")
	} else if _, ok := r.s.pets[p.ID]; !ok {
		return clinic.ErrNotFound
	}
	r.s.pets[p.ID] = petRow{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		TypeID:    typeID,
		OwnerID:   p.OwnerID(),
	}
	return nil
}

func (r *petRepo) Delete(ctx context.Context, p *clinic.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p == nil {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.pets[p.ID]; !ok {
		return clinic.ErrNotFound
	}
	r.s.deletePetLocked(p.ID)
	return nil
}
