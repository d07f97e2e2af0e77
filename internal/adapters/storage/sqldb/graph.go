package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"petclinic/internal/domain/clinic"
)

// loadedPet es una mascota recién leída, todavía sin enganchar a su dueño.
type loadedPet struct {
	pet     *clinic.Pet
	ownerID int
}

// loadPets lee mascotas (con tipo y visitas) que cumplen petFilter.
// petFilter usa el alias "p" para pets y recibe args una vez por query.
func (c *conn) loadPets(ctx context.Context, petFilter string, args ...any) ([]loadedPet, error) {
	rows, err := c.query(ctx, c.db, `
		SELECT p.id, p.name, p.birth_date, p.owner_id, t.id, t.name
		FROM pets p
		LEFT JOIN types t ON t.id = p.type_id
		WHERE `+petFilter+`
		ORDER BY p.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("select pets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]loadedPet, 0)
	byID := map[int]*clinic.Pet{}
	for rows.Next() {
		var (
			p        clinic.Pet
			bd       sql.NullString
			ownerID  sql.NullInt64
			typeID   sql.NullInt64
			typeName sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &bd, &ownerID, &typeID, &typeName); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		p.BirthDate = parseDate(bd)
		if typeID.Valid {
			p.Type = &clinic.PetType{ID: int(typeID.Int64), Name: typeName.String}
		}
		p.Visits = make([]*clinic.Visit, 0)

		lp := loadedPet{pet: &p, ownerID: int(ownerID.Int64)}
		out = append(out, lp)
		byID[p.ID] = lp.pet
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	visits, err := c.loadVisits(ctx, c.db, "v.pet_id IN (SELECT p.id FROM pets p WHERE "+petFilter+")", args...)
	if err != nil {
		return nil, err
	}
	for _, v := range visits {
		if p, ok := byID[v.PetID]; ok {
			p.Visits = append(p.Visits, v)
		}
	}
	return out, nil
}

// loadVisits lee visitas ordenadas por fecha; visitFilter usa el alias "v".
func (c *conn) loadVisits(ctx context.Context, q queryer, visitFilter string, args ...any) ([]*clinic.Visit, error) {
	rows, err := c.query(ctx, q, `
		SELECT v.id, v.pet_id, v.visit_date, v.description
		FROM visits v
		WHERE `+visitFilter+`
		ORDER BY v.visit_date, v.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("select visits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*clinic.Visit, 0)
	for rows.Next() {
		var (
			v  clinic.Visit
			vd sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.PetID, &vd, &v.Description); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Date = parseDate(vd)
		out = append(out, &v)
	}
	return out, rows.Err()
}

// loadOwners arma los grafos Owner <-> Pet para los owners que cumplen ownerFilter (alias "o").
func (c *conn) loadOwners(ctx context.Context, ownerFilter string, args ...any) ([]*clinic.Owner, error) {
	rows, err := c.query(ctx, c.db, `
		SELECT o.id, o.first_name, o.last_name, o.address, o.city, o.telephone
		FROM owners o
		WHERE `+ownerFilter+`
		ORDER BY o.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("select owners: %w", err)
	}
	defer func() { _ = rows.Close() }()

	owners := make([]*clinic.Owner, 0)
	byID := map[int]*clinic.Owner{}
	for rows.Next() {
		var o clinic.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		owners = append(owners, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return owners, nil
	}

	pets, err := c.loadPets(ctx, "p.owner_id IN (SELECT o.id FROM owners o WHERE "+ownerFilter+")", args...)
	if err != nil {
		return nil, err
	}
	for _, lp := range pets {
		if o, ok := byID[lp.ownerID]; ok {
			o.AddPet(lp.pet)
		}
	}
	return owners, nil
}
