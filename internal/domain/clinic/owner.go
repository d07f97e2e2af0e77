package clinic

import "strings"

// AddPet agrega la mascota al final de la lista y setea su back-reference.
// Al volver, ambos lados de la relación quedan consistentes.
func (o *Owner) AddPet(p *Pet) {
	if p == nil {
		return
	}
	p.Owner = o
	o.Pets = append(o.Pets, p)
}

// GetPet busca por nombre (case-insensitive). Gana el primero en orden de inserción.
// Devuelve nil si no hay match.
func (o *Owner) GetPet(name string) *Pet {
	for _, p := range o.Pets {
		if p != nil && strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// GetPetByID busca por id exacto. Un id sin asignar (0) nunca matchea,
// así que mascotas aún no persistidas no se encuentran por id.
func (o *Owner) GetPetByID(id int) *Pet {
	if id == 0 {
		return nil
	}
	for _, p := range o.Pets {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}
