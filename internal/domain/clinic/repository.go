package clinic

import "context"

// Contrato común de los repos:
// - FindByID devuelve (nil, nil) si no existe; la ausencia no es un error.
// - Save inserta si IsNew() y escribe el id generado en la entidad; si no, actualiza
//   y devuelve ErrNotFound cuando la fila no existe.
// - Delete devuelve ErrNotFound cuando la fila no existe.

type OwnerRepository interface {
	FindAll(ctx context.Context) ([]*Owner, error)
	FindByID(ctx context.Context, id int) (*Owner, error)
	FindByLastName(ctx context.Context, lastName string) ([]*Owner, error)
	Save(ctx context.Context, o *Owner) error
	Delete(ctx context.Context, o *Owner) error
}

type PetRepository interface {
	FindAll(ctx context.Context) ([]*Pet, error)
	FindByID(ctx context.Context, id int) (*Pet, error)
	Save(ctx context.Context, p *Pet) error
	Delete(ctx context.Context, p *Pet) error
}

type PetTypeRepository interface {
	FindAll(ctx context.Context) ([]*PetType, error)
	FindByID(ctx context.Context, id int) (*PetType, error)
	Save(ctx context.Context, t *PetType) error
	Delete(ctx context.Context, t *PetType) error
}

type VetRepository interface {
	FindAll(ctx context.Context) ([]*Vet, error)
	FindByID(ctx context.Context, id int) (*Vet, error)
	Save(ctx context.Context, v *Vet) error
	Delete(ctx context.Context, v *Vet) error
}

type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]*Specialty, error)
	FindByID(ctx context.Context, id int) (*Specialty, error)
	Save(ctx context.Context, s *Specialty) error
	Delete(ctx context.Context, s *Specialty) error
}

type VisitRepository interface {
	FindByID(ctx context.Context, id int) (*Visit, error)
	FindByPetID(ctx context.Context, petID int) ([]*Visit, error)
	Save(ctx context.Context, v *Visit) error
	Delete(ctx context.Context, v *Visit) error
}

// Repositories agrupa los puertos para cablearlos de una sola vez (memory / sql).
type Repositories struct {
	Owners      OwnerRepository
	Pets        PetRepository
	PetTypes    PetTypeRepository
	Vets        VetRepository
	Specialties SpecialtyRepository
	Visits      VisitRepository
}
