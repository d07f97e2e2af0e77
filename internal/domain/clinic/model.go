package clinic

import (
	"strings"
	"time"
)

// DateLayout es el formato de fechas de calendario (nacimiento, visitas).
const DateLayout = "2006-01-02"

// Owner representa a un cliente de la clínica con sus mascotas.
type Owner struct {
	ID int // 0 = todavía no persistido

	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	// Orden de inserción. Owner solo indexa; el ciclo de vida de cada Pet
	// sigue siendo responsabilidad de quien lo creó.
	Pets []*Pet
}

// PetType es un valor de referencia (dog, cat, ...).
type PetType struct {
	ID   int
	Name string
}

// Pet representa una mascota bajo el cuidado de un Owner.
type Pet struct {
	ID int

	Name      string
	BirthDate time.Time // solo fecha (YYYY-MM-DD)
	Type      *PetType

	// Back-reference; la setea Owner.AddPet.
	Owner *Owner

	Visits []*Visit
}

// Visit es una visita de una mascota a la clínica.
type Visit struct {
	ID          int
	PetID       int
	Date        time.Time
	Description string
}

type Specialty struct {
	ID   int
	Name string
}

type Vet struct {
	ID          int
	FirstName   string
	LastName    string
	Specialties []*Specialty
}

func (o *Owner) IsNew() bool     { return o.ID == 0 }
func (p *Pet) IsNew() bool       { return p.ID == 0 }
func (t *PetType) IsNew() bool   { return t.ID == 0 }
func (v *Visit) IsNew() bool     { return v.ID == 0 }
func (s *Specialty) IsNew() bool { return s.ID == 0 }
func (v *Vet) IsNew() bool       { return v.ID == 0 }

func (o *Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// OwnerID devuelve el id del dueño o 0 si la mascota no tiene dueño asignado.
func (p *Pet) OwnerID() int {
	if p.Owner == nil {
		return 0
	}
	return p.Owner.ID
}

// AddVisit agrega la visita y la asocia a esta mascota.
func (p *Pet) AddVisit(v *Visit) {
	if v == nil {
		return
	}
	v.PetID = p.ID
	p.Visits = append(p.Visits, v)
}

// AddSpecialty no duplica: se ignora si ya existe una con el mismo id o nombre.
// Una especialidad sin nombre (solo id) se compara únicamente por id.
func (v *Vet) AddSpecialty(s *Specialty) {
	if s == nil {
		return
	}
	for _, cur := range v.Specialties {
		if s.ID != 0 && cur.ID == s.ID {
			return
		}
		if s.Name != "" && strings.EqualFold(cur.Name, s.Name) {
			return
		}
	}
	v.Specialties = append(v.Specialties, s)
}
