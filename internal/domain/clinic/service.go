package clinic

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrPetTypeNotFound   = errors.New("pet type not found")
	ErrSpecialtyNotFound = errors.New("specialty not found")
)

// Service es la fachada de la clínica: delega en los repos.
// Los errores de los repos se devuelven tal cual; un "no encontrado" (nil, nil)
// también se propaga sin convertirlo en error.
type Service struct {
	owners      OwnerRepository
	pets        PetRepository
	petTypes    PetTypeRepository
	vets        VetRepository
	specialties SpecialtyRepository
	visits      VisitRepository
}

func NewService(repos Repositories) *Service {
	return &Service{
		owners:      repos.Owners,
		pets:        repos.Pets,
		petTypes:    repos.PetTypes,
		vets:        repos.Vets,
		specialties: repos.Specialties,
		visits:      repos.Visits,
	}
}

// -------------------------
// Owners
// -------------------------

func (s *Service) FindAllOwners(ctx context.Context) ([]*Owner, error) {
	return s.owners.FindAll(ctx)
}

func (s *Service) FindOwnerByID(ctx context.Context, id int) (*Owner, error) {
	return s.owners.FindByID(ctx, id)
}

func (s *Service) FindOwnersByLastName(ctx context.Context, lastName string) ([]*Owner, error) {
	return s.owners.FindByLastName(ctx, lastName)
}

func (s *Service) SaveOwner(ctx context.Context, o *Owner) error {
	if o == nil {
		return ErrInvalidInput
	}
	return s.owners.Save(ctx, o)
}

func (s *Service) DeleteOwner(ctx context.Context, o *Owner) error {
	return s.owners.Delete(ctx, o)
}

// -------------------------
// Pets
// -------------------------

func (s *Service) FindAllPets(ctx context.Context) ([]*Pet, error) {
	return s.pets.FindAll(ctx)
}

func (s *Service) FindPetByID(ctx context.Context, id int) (*Pet, error) {
	return s.pets.FindByID(ctx, id)
}

// SavePet resuelve el PetType completo a partir del id embebido antes de guardar,
// así nunca se persiste una mascota con un tipo a medio poblar.
func (s *Service) SavePet(ctx context.Context, p *Pet) error {
	if p == nil || p.Type == nil {
		return ErrInvalidInput
	}

	t, err := s.petTypes.FindByID(ctx, p.Type.ID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrPetTypeNotFound
	}
	p.Type = t

	return s.pets.Save(ctx, p)
}

func (s *Service) DeletePet(ctx context.Context, p *Pet) error {
	return s.pets.Delete(ctx, p)
}

// -------------------------
// Pet types
// -------------------------

func (s *Service) FindAllPetTypes(ctx context.Context) ([]*PetType, error) {
	return s.petTypes.FindAll(ctx)
}

func (s *Service) FindPetTypeByID(ctx context.Context, id int) (*PetType, error) {
	return s.petTypes.FindByID(ctx, id)
}

func (s *Service) SavePetType(ctx context.Context, t *PetType) error {
	if t == nil {
		return ErrInvalidInput
	}
	return s.petTypes.Save(ctx, t)
}

func (s *Service) DeletePetType(ctx context.Context, t *PetType) error {
	return s.petTypes.Delete(ctx, t)
}

// -------------------------
// Vets / specialties
// -------------------------

func (s *Service) FindAllVets(ctx context.Context) ([]*Vet, error) {
	return s.vets.FindAll(ctx)
}

func (s *Service) FindVetByID(ctx context.Context, id int) (*Vet, error) {
	return s.vets.FindByID(ctx, id)
}

// SaveVet resuelve cada especialidad por id (igual que SavePet con el tipo).
// Ids repetidos se resuelven una sola vez.
func (s *Service) SaveVet(ctx context.Context, v *Vet) error {
	if v == nil {
		return ErrInvalidInput
	}

	resolved := make([]*Specialty, 0, len(v.Specialties))
	seen := map[int]bool{}
	for _, sp := range v.Specialties {
		if sp == nil || seen[sp.ID] {
			continue
		}
		seen[sp.ID] = true
		found, err := s.specialties.FindByID(ctx, sp.ID)
		if err != nil {
			return err
		}
		if found == nil {
			return ErrSpecialtyNotFound
		}
		resolved = append(resolved, found)
	}
	v.Specialties = resolved

	return s.vets.Save(ctx, v)
}

func (s *Service) DeleteVet(ctx context.Context, v *Vet) error {
	return s.vets.Delete(ctx, v)
}

func (s *Service) FindAllSpecialties(ctx context.Context) ([]*Specialty, error) {
	return s.specialties.FindAll(ctx)
}

func (s *Service) FindSpecialtyByID(ctx context.Context, id int) (*Specialty, error) {
	return s.specialties.FindByID(ctx, id)
}

func (s *Service) SaveSpecialty(ctx context.Context, sp *Specialty) error {
	if sp == nil {
		return ErrInvalidInput
	}
	return s.specialties.Save(ctx, sp)
}

func (s *Service) DeleteSpecialty(ctx context.Context, sp *Specialty) error {
	return s.specialties.Delete(ctx, sp)
}

// -------------------------
// Visits
// -------------------------

func (s *Service) FindVisitsByPetID(ctx context.Context, petID int) ([]*Visit, error) {
	return s.visits.FindByPetID(ctx, petID)
}

func (s *Service) FindVisitByID(ctx context.Context, id int) (*Visit, error) {
	return s.visits.FindByID(ctx, id)
}

func (s *Service) SaveVisit(ctx context.Context, v *Visit) error {
	if v == nil || v.PetID == 0 {
		return ErrInvalidInput
	}
	return s.visits.Save(ctx, v)
}

func (s *Service) DeleteVisit(ctx context.Context, v *Visit) error {
	return s.visits.Delete(ctx, v)
}
