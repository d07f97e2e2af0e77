package clinic

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DTOs de la API. Los campos van en snake_case como el resto de la API.

type ownerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

type ownerResponse struct {
	ID        int           `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Telephone string        `json:"telephone"`
	Pets      []petResponse `json:"pets"`
}

type petRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD opcional
	TypeID    int    `json:"type_id"`
}

type petResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BirthDate string          `json:"birth_date,omitempty"`
	Type      *namedResponse  `json:"type,omitempty"`
	OwnerID   int             `json:"owner_id,omitempty"`
	Visits    []visitResponse `json:"visits"`
}

type visitRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD; vacío = hoy
	Description string `json:"description"`
}

type visitResponse struct {
	ID          int    `json:"id"`
	PetID       int    `json:"pet_id"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description"`
}

// namedRequest / namedResponse sirven para PetType y Specialty (id + name).
type namedRequest struct {
	Name string `json:"name"`
}

type namedResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type vetRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	SpecialtyIDs []int  `json:"specialty_ids"`
}

type vetResponse struct {
	ID          int             `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Specialties []namedResponse `json:"specialties"`
}

// Largos máximos; ninguno supera la columna correspondiente del schema SQL.
const (
	maxPersonName  = 30
	maxAddress     = 255
	maxCity        = 80
	maxTelephone   = 10
	maxPetName     = 30
	maxNamed       = 80
	maxDescription = 255
)

// checkText valida un campo ya recortado. El error envuelve ErrInvalidInput (=> 400).
func checkText(field, value string, limit int) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s longer than %d characters", ErrInvalidInput, field, limit)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// applyTo valida todo antes de tocar o: si hay error, o queda como estaba.
func (req ownerRequest) applyTo(o *Owner) error {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	address := strings.TrimSpace(req.Address)
	city := strings.TrimSpace(req.City)
	phone := strings.TrimSpace(req.Telephone)

	for _, c := range []struct {
		field, value string
		limit        int
	}{
		{"first_name", first, maxPersonName},
		{"last_name", last, maxPersonName},
		{"address", address, maxAddress},
		{"city", city, maxCity},
		{"telephone", phone, maxTelephone},
	} {
		if err := checkText(c.field, c.value, c.limit); err != nil {
			return err
		}
	}
	if !isDigits(phone) {
		return fmt.Errorf("%w: telephone must contain only digits", ErrInvalidInput)
	}

	o.FirstName = first
	o.LastName = last
	o.Address = address
	o.City = city
	o.Telephone = phone
	return nil
}

// applyTo valida lo mínimo para armar la entidad; el tipo se resuelve en SavePet.
func (req petRequest) applyTo(p *Pet) error {
	name := strings.TrimSpace(req.Name)
	if err := checkText("name", name, maxPetName); err != nil {
		return err
	}
	if req.TypeID <= 0 {
		return fmt.Errorf("%w: type_id is required", ErrInvalidInput)
	}
	bd, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return err
	}
	p.Name = name
	p.BirthDate = bd
	p.Type = &PetType{ID: req.TypeID}
	return nil
}

// toVisit arma la visita; sin fecha se usa hoy (UTC).
func (req visitRequest) toVisit(now time.Time) (*Visit, error) {
	desc := strings.TrimSpace(req.Description)
	if err := checkText("description", desc, maxDescription); err != nil {
		return nil, err
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if date.IsZero() {
		y, m, d := now.UTC().Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return &Visit{Date: date, Description: desc}, nil
}

// name devuelve el nombre recortado de un PetType o Specialty.
func (req namedRequest) name() (string, error) {
	name := strings.TrimSpace(req.Name)
	if err := checkText("name", name, maxNamed); err != nil {
		return "", err
	}
	return name, nil
}

func parseOptionalDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func toOwnerResponse(o *Owner) ownerResponse {
	pets := make([]petResponse, 0, len(o.Pets))
	for _, p := range o.Pets {
		pets = append(pets, toPetResponse(p))
	}
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      pets,
	}
}

func toPetResponse(p *Pet) petResponse {
	visits := make([]visitResponse, 0, len(p.Visits))
	for _, v := range p.Visits {
		visits = append(visits, toVisitResponse(v))
	}
	out := petResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: formatDate(p.BirthDate),
		OwnerID:   p.OwnerID(),
		Visits:    visits,
	}
	if p.Type != nil {
		out.Type = &namedResponse{ID: p.Type.ID, Name: p.Type.Name}
	}
	return out
}

func toVisitResponse(v *Visit) visitResponse {
	return visitResponse{ID: v.ID, PetID: v.PetID, Date: formatDate(v.Date), Description: v.Description}
}

func toVetResponse(v *Vet) vetResponse {
	specs := make([]namedResponse, 0, len(v.Specialties))
	for _, s := range v.Specialties {
		specs = append(specs, namedResponse{ID: s.ID, Name: s.Name})
	}
	return vetResponse{ID: v.ID, FirstName: v.FirstName, LastName: v.LastName, Specialties: specs}
}

// applyTo arma las especialidades solo con id; SaveVet las resuelve.
func (req vetRequest) applyTo(v *Vet) error {
	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	if err := checkText("first_name", first, maxPersonName); err != nil {
		return err
	}
	if err := checkText("last_name", last, maxPersonName); err != nil {
		return err
	}

	v.FirstName = first
	v.LastName = last
	v.Specialties = nil
	for _, id := range req.SpecialtyIDs {
		v.AddSpecialty(&Specialty{ID: id})
	}
	return nil
}
