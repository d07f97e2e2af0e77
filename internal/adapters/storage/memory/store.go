package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"petclinic/internal/domain/clinic"
)

// Filas internas: se guardan valores planos (como en SQL) y el grafo
// Owner <-> Pet se arma en cada lectura. Así nadie afuera puede mutar el store
// a través de un puntero devuelto.
type ownerRow struct {
	ID        int
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

type petRow struct {
	ID        int
	Name      string
	BirthDate time.Time
	TypeID    int
	OwnerID   int
}

type visitRow struct {
	ID          int
	PetID       int
	Date        time.Time
	Description string
}

type vetRow struct {
	ID           int
	FirstName    string
	LastName     string
	SpecialtyIDs []int
}

type store struct {
	mu sync.RWMutex

	lastID map[string]int

	owners      map[int]ownerRow
	pets        map[int]petRow
	petTypes    map[int]clinic.PetType
	specialties map[int]clinic.Specialty
	vets        map[int]vetRow
	visits      map[int]visitRow
}

// NewRepositories arma los seis repos sobre un mismo store en memoria.
func NewRepositories() clinic.Repositories {
	s := &store{
		lastID:      map[string]int{},
		owners:      map[int]ownerRow{},
		pets:        map[int]petRow{},
		petTypes:    map[int]clinic.PetType{},
		specialties: map[int]clinic.Specialty{},
		vets:        map[int]vetRow{},
		visits:      map[int]visitRow{},
	}
	return clinic.Repositories{
		Owners:      &ownerRepo{s: s},
		Pets:        &petRepo{s: s},
		PetTypes:    &petTypeRepo{s: s},
		Vets:        &vetRepo{s: s},
		Specialties: &specialtyRepo{s: s},
		Visits:      &visitRepo{s: s},
	}
}

// nextID debe llamarse con el lock de escritura tomado.
func (s *store) nextID(table string) int {
	s.lastID[table]++
	return s.lastID[table]
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Helpers de hidratación: requieren al menos el lock de lectura.

func (s *store) petTypeOf(id int) *clinic.PetType {
	t, ok := s.petTypes[id]
	if !ok {
		return nil
	}
	return &t
}

func (s *store) visitsOf(petID int) []*clinic.Visit {
	out := make([]*clinic.Visit, 0)
	for _, id := range sortedKeys(s.visits) {
		v := s.visits[id]
		if v.PetID != petID {
			continue
		}
		out = append(out, &clinic.Visit{ID: v.ID, PetID: v.PetID, Date: v.Date, Description: v.Description})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s *store) buildPet(row petRow) *clinic.Pet {
	return &clinic.Pet{
		ID:        row.ID,
		Name:      row.Name,
		BirthDate: row.BirthDate,
		Type:      s.petTypeOf(row.TypeID),
		Visits:    s.visitsOf(row.ID),
	}
}

// buildOwner arma el owner con sus mascotas en orden de alta (id asc).
func (s *store) buildOwner(row ownerRow) *clinic.Owner {
	o := &clinic.Owner{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Address:   row.Address,
		City:      row.City,
		Telephone: row.Telephone,
	}
	for _, id := range sortedKeys(s.pets) {
		p := s.pets[id]
		if p.OwnerID == row.ID {
			o.AddPet(s.buildPet(p))
		}
	}
	return o
}

func (s *store) buildVet(row vetRow) *clinic.Vet {
	v := &clinic.Vet{ID: row.ID, FirstName: row.FirstName, LastName: row.LastName}
	for _, sid := range row.SpecialtyIDs {
		sp, ok := s.specialties[sid]
		if !ok {
			continue
		}
		v.AddSpecialty(&sp)
	}
	return v
}

// deletePetLocked borra la mascota y sus visitas. Requiere lock de escritura.
func (s *store) deletePetLocked(petID int) {
	for id, v := range s.visits {
		if v.PetID == petID {
			delete(s.visits, id)
		}
	}
	delete(s.pets, petID)
}

// unknownRef es el equivalente en memoria a una violación de foreign key.
func unknownRef(kind string, id int) error {
	return fmt.Errorf("%w: unknown %s %d", clinic.ErrInvalidInput, kind, id)
}
