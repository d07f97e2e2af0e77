package clinic

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type seedPet struct {
	name      string
	birthDate string
	petType   string
	visits    []seedVisit
}

type seedVisit struct {
	date        string
	description string
}

type seedOwner struct {
	firstName, lastName, address, city, telephone string
	pets                                          []seedPet
}

var (
	seedPetTypes    = []string{"cat", "dog", "lizard", "snake", "bird", "hamster"}
	seedSpecialties = []string{"radiology", "surgery", "dentistry"}

	seedVets = []struct {
		firstName, lastName string
		specialties         []string
	}{
		{"James", "Carter", nil},
		{"Helen", "Leary", []string{"radiology"}},
		{"Linda", "Douglas", []string{"surgery", "dentistry"}},
		{"Rafael", "Ortega", []string{"surgery"}},
		{"Henry", "Stevens", []string{"radiology"}},
		{"Sharon", "Jenkins", nil},
	}

	seedOwners = []seedOwner{
		{"George", "Franklin", "110 W. Liberty St.", "Madison", "6085551023", []seedPet{
			{"Leo", "2010-09-07", "cat", nil},
		}},
		{"Betty", "Davis", "638 Cardinal Ave.", "Sun Prairie", "6085551749", []seedPet{
			{"Basil", "2012-08-06", "hamster", nil},
		}},
		{"Eduardo", "Rodriquez", "2693 Commerce St.", "McFarland", "6085558763", []seedPet{
			{"Rosy", "2011-04-17", "dog", nil},
			{"Jewel", "2010-03-07", "dog", nil},
		}},
		{"Harold", "Davis", "563 Friendly St.", "Windsor", "6085553198", []seedPet{
			{"Iggy", "2010-11-30", "lizard", nil},
		}},
		{"Peter", "McTavish", "2387 S. Fair Way", "Madison", "6085552765", []seedPet{
			{"George", "2010-01-20", "snake", nil},
		}},
		{"Jean", "Coleman", "105 N. Lake St.", "Monona", "6085552654", []seedPet{
			{"Samantha", "2012-09-04", "cat", []seedVisit{{"2013-01-01", "rabies shot"}, {"2013-01-04", "spayed"}}},
			{"Max", "2012-09-04", "cat", []seedVisit{{"2013-01-02", "rabies shot"}, {"2013-01-03", "neutered"}}},
		}},
		{"Jeff", "Black", "1450 Oak Blvd.", "Monona", "6085555387", []seedPet{
			{"Lucky", "2011-08-06", "bird", nil},
		}},
		{"Maria", "Escobito", "345 Maple St.", "Madison", "6085557683", []seedPet{
			{"Mulligan", "2007-02-24", "dog", nil},
		}},
		{"David", "Schroeder", "2749 Blackhawk Trail", "Madison", "6085559435", []seedPet{
			{"Freddy", "2010-03-09", "bird", nil},
		}},
		{"Carlos", "Estaban", "2335 Independence La.", "Waunakee", "6085555487", []seedPet{
			{"Lucky", "2010-06-24", "dog", nil},
			{"Sly", "2012-06-08", "cat", nil},
		}},
	}
)

// ErrAlreadySeeded indica que el storage ya tenía datos y Seed no tocó nada.
var ErrAlreadySeeded = errors.New("store already has data")

// Seed carga el set de datos de ejemplo usando la fachada (no los repos directamente).
// Solo corre sobre un storage vacío; si ya hay tipos u owners devuelve ErrAlreadySeeded.
func Seed(ctx context.Context, svc *Service) error {
	existingTypes, err := svc.FindAllPetTypes(ctx)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	existingOwners, err := svc.FindAllOwners(ctx)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if len(existingTypes) > 0 || len(existingOwners) > 0 {
		return ErrAlreadySeeded
	}

	types := map[string]*PetType{}
	for _, name := range seedPetTypes {
		t := &PetType{Name: name}
		if err := svc.SavePetType(ctx, t); err != nil {
			return fmt.Errorf("seed pet type %s: %w", name, err)
		}
		types[name] = t
	}

	specialties := map[string]*Specialty{}
	for _, name := range seedSpecialties {
		sp := &Specialty{Name: name}
		if err := svc.SaveSpecialty(ctx, sp); err != nil {
			return fmt.Errorf("seed specialty %s: %w", name, err)
		}
		specialties[name] = sp
	}

	for _, sv := range seedVets {
		v := &Vet{FirstName: sv.firstName, LastName: sv.lastName}
		for _, name := range sv.specialties {
			v.AddSpecialty(specialties[name])
		}
		if err := svc.SaveVet(ctx, v); err != nil {
			return fmt.Errorf("seed vet %s: %w", sv.lastName, err)
		}
	}

	for _, so := range seedOwners {
		o := &Owner{
			FirstName: so.firstName,
			LastName:  so.lastName,
			Address:   so.address,
			City:      so.city,
			Telephone: so.telephone,
		}
		if err := svc.SaveOwner(ctx, o); err != nil {
			return fmt.Errorf("seed owner %s: %w", o.FullName(), err)
		}

		for _, sp := range so.pets {
			p := &Pet{
				Name:      sp.name,
				BirthDate: mustDate(sp.birthDate),
				Type:      &PetType{ID: types[sp.petType].ID},
			}
			o.AddPet(p)
			if err := svc.SavePet(ctx, p); err != nil {
				return fmt.Errorf("seed pet %s: %w", p.Name, err)
			}

			for _, sv := range sp.visits {
				v := &Visit{Date: mustDate(sv.date), Description: sv.description}
				p.AddVisit(v)
				if err := svc.SaveVisit(ctx, v); err != nil {
					return fmt.Errorf("seed visit for %s: %w", p.Name, err)
				}
			}
		}
	}

	return nil
}

func mustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
