// Package storagetest tiene la batería de tests que todo adapter de storage
// (memory, sqlite, postgres) tiene que pasar para cumplir los puertos de clinic.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"petclinic/internal/domain/clinic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory devuelve repos vacíos y aislados para cada subtest.
type Factory func(t *testing.T) clinic.Repositories

func Run(t *testing.T, newRepos Factory) {
	t.Helper()

	t.Run("FindByID returns nil without error when absent", func(t *testing.T) {
		testFindByIDAbsent(t, newRepos(t))
	})
	t.Run("owner graph is hydrated", func(t *testing.T) {
		testOwnerGraph(t, newRepos(t))
	})
	t.Run("update and not found", func(t *testing.T) {
		testUpdate(t, newRepos(t))
	})
	t.Run("find owners by last name prefix", func(t *testing.T) {
		testFindByLastName(t, newRepos(t))
	})
	t.Run("delete owner cascades", func(t *testing.T) {
		testDeleteOwnerCascades(t, newRepos(t))
	})
	t.Run("delete pet type cascades", func(t *testing.T) {
		testDeletePetTypeCascades(t, newRepos(t))
	})
	t.Run("vets and specialties", func(t *testing.T) {
		testVets(t, newRepos(t))
	})
	t.Run("visits", func(t *testing.T) {
		testVisits(t, newRepos(t))
	})
	t.Run("dangling references are rejected", func(t *testing.T) {
		testDanglingReferences(t, newRepos(t))
	})
}

func date(s string) time.Time {
	d, err := time.Parse(clinic.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// seedOwner guarda un tipo, un owner y sus mascotas; devuelve el owner con ids asignados.
func seedOwner(t *testing.T, repos clinic.Repositories, petNames ...string) (*clinic.Owner, *clinic.PetType) {
	t.Helper()
	ctx := context.Background()

	dog := &clinic.PetType{Name: "dog"}
	require.NoError(t, repos.PetTypes.Save(ctx, dog))

	o := &clinic.Owner{FirstName: "John", LastName: "Doe", Address: "123 Main St", City: "Springfield", Telephone: "5551234567"}
	require.NoError(t, repos.Owners.Save(ctx, o))
	require.NotZero(t, o.ID)

	for i, name := range petNames {
		p := &clinic.Pet{Name: name, BirthDate: date("2020-05-15").AddDate(i, 0, 0), Type: dog}
		o.AddPet(p)
		require.NoError(t, repos.Pets.Save(ctx, p))
		require.NotZero(t, p.ID)
	}
	return o, dog
}

func testFindByIDAbsent(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()

	o, err := repos.Owners.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, o)

	p, err := repos.Pets.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, p)

	pt, err := repos.PetTypes.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, pt)

	v, err := repos.Vets.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, v)

	sp, err := repos.Specialties.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, sp)

	vi, err := repos.Visits.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, vi)

	owners, err := repos.Owners.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func testOwnerGraph(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()
	o, dog := seedOwner(t, repos, "Max", "Buddy")

	got, err := repos.Owners.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Springfield", got.City)
	require.Len(t, got.Pets, 2)
	assert.Equal(t, "Max", got.Pets[0].Name)
	assert.Equal(t, "Buddy", got.Pets[1].Name)

	for _, p := range got.Pets {
		assert.Same(t, got, p.Owner)
		require.NotNil(t, p.Type)
		assert.Equal(t, dog.ID, p.Type.ID)
		assert.Equal(t, "dog", p.Type.Name)
	}
	assert.Equal(t, date("2020-05-15"), got.Pets[0].BirthDate.UTC())

	pet, err := repos.Pets.FindByID(ctx, got.Pets[1].ID)
	require.NoError(t, err)
	require.NotNil(t, pet)
	require.NotNil(t, pet.Owner)
	assert.Equal(t, o.ID, pet.Owner.ID)
	assert.Same(t, pet, pet.Owner.GetPetByID(pet.ID))

	all, err := repos.Pets.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Same(t, all[0].Owner, all[1].Owner)
}

func testUpdate(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()
	o, _ := seedOwner(t, repos, "Max")

	o.City = "Shelbyville"
	require.NoError(t, repos.Owners.Save(ctx, o))

	p := o.Pets[0]
	p.Name = "Maximus"
	require.NoError(t, repos.Pets.Save(ctx, p))

	got, err := repos.Owners.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shelbyville", got.City)
	assert.NotNil(t, got.GetPet("maximus"))

	ghost := &clinic.Owner{ID: 4242, FirstName: "Ghost"}
	assert.True(t, errors.Is(repos.Owners.Save(ctx, ghost), clinic.ErrNotFound))
	assert.True(t, errors.Is(repos.Owners.Delete(ctx, ghost), clinic.ErrNotFound))
	assert.True(t, errors.Is(repos.Pets.Save(ctx, &clinic.Pet{ID: 4242, Name: "x", Type: p.Type}), clinic.ErrNotFound))
}

func testFindByLastName(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()
	for _, last := range []string{"Davis", "Davison", "Franklin"} {
		require.NoError(t, repos.Owners.Save(ctx, &clinic.Owner{FirstName: "X", LastName: last}))
	}

	got, err := repos.Owners.FindByLastName(ctx, "dav")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Davis", got[0].LastName)
	assert.Equal(t, "Davison", got[1].LastName)

	none, err := repos.Owners.FindByLastName(ctx, "Zed")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testDeleteOwnerCascades(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()
	o, _ := seedOwner(t, repos, "Max")
	p := o.Pets[0]

	v := &clinic.Visit{Date: date("2024-01-01"), Description: "rabies shot"}
	p.AddVisit(v)
	require.NoError(t, repos.Visits.Save(ctx, v))

	require.NoError(t, repos.Owners.Delete(ctx, o))

	got, err := repos.Owners.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	gotPet, err := repos.Pets.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPet)

	gotVisit, err := repos.Visits.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, gotVisit)
}

func testDeletePetTypeCascades(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()
	o, dog := seedOwner(t, repos, "Max")

	require.NoError(t, repos.PetTypes.Delete(ctx, dog))

	got, err := repos.Owners.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Pets)

	types, err := repos.PetTypes.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func testVets(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()

	radiology := &clinic.Specialty{Name: "radiology"}
	surgery := &clinic.Specialty{Name: "surgery"}
	require.NoError(t, repos.Specialties.Save(ctx, radiology))
	require.NoError(t, repos.Specialties.Save(ctx, surgery))

	v := &clinic.Vet{FirstName: "Linda", LastName: "Douglas"}
	v.AddSpecialty(radiology)
	v.AddSpecialty(surgery)
	require.NoError(t, repos.Vets.Save(ctx, v))

	got, err := repos.Vets.FindByID(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Specialties, 2)

	require.NoError(t, repos.Specialties.Delete(ctx, radiology))
	got, err = repos.Vets.FindByID(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got.Specialties, 1)
	assert.Equal(t, "surgery", got.Specialties[0].Name)

	// una especialidad repetida se guarda una sola vez
	got.Specialties = append(got.Specialties, &clinic.Specialty{ID: surgery.ID})
	require.NoError(t, repos.Vets.Save(ctx, got))
	got, err = repos.Vets.FindByID(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got.Specialties, 1)

	got.Specialties = nil
	require.NoError(t, repos.Vets.Save(ctx, got))
	got, err = repos.Vets.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Specialties)

	require.NoError(t, repos.Vets.Delete(ctx, got))
	all, err := repos.Vets.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	specs, err := repos.Specialties.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, specs, 1)
}

func testVisits(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()
	o, _ := seedOwner(t, repos, "Samantha")
	p := o.Pets[0]

	later := &clinic.Visit{Date: date("2013-01-04"), Description: "spayed"}
	earlier := &clinic.Visit{Date: date("2013-01-01"), Description: "rabies shot"}
	p.AddVisit(later)
	p.AddVisit(earlier)
	require.NoError(t, repos.Visits.Save(ctx, later))
	require.NoError(t, repos.Visits.Save(ctx, earlier))

	visits, err := repos.Visits.FindByPetID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "rabies shot", visits[0].Description)
	assert.Equal(t, p.ID, visits[0].PetID)

	pet, err := repos.Pets.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, pet.Visits, 2)
	assert.Equal(t, date("2013-01-04"), pet.Visits[1].Date.UTC())

	require.NoError(t, repos.Visits.Delete(ctx, earlier))
	assert.True(t, errors.Is(repos.Visits.Delete(ctx, earlier), clinic.ErrNotFound))

	visits, err = repos.Visits.FindByPetID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, visits, 1)
}

func testDanglingReferences(t *testing.T, repos clinic.Repositories) {
	ctx := context.Background()
	o, dog := seedOwner(t, repos, "Max")

	orphanType := &clinic.Pet{Name: "Rex", Type: &clinic.PetType{ID: 4242}}
	o.AddPet(orphanType)
	err := repos.Pets.Save(ctx, orphanType)
	assert.True(t, errors.Is(err, clinic.ErrInvalidInput), "unknown type: %v", err)
	assert.Zero(t, orphanType.ID)

	noOwner := &clinic.Pet{Name: "Rex", Type: dog, Owner: &clinic.Owner{ID: 4242}}
	err = repos.Pets.Save(ctx, noOwner)
	assert.True(t, errors.Is(err, clinic.ErrInvalidInput), "unknown owner: %v", err)

	v := &clinic.Visit{PetID: 4242, Date: date("2024-01-01"), Description: "orphan"}
	err = repos.Visits.Save(ctx, v)
	assert.True(t, errors.Is(err, clinic.ErrInvalidInput), "unknown pet: %v", err)
	assert.Zero(t, v.ID)

	vet := &clinic.Vet{FirstName: "Linda", LastName: "Douglas", Specialties: []*clinic.Specialty{{ID: 4242}}}
	err = repos.Vets.Save(ctx, vet)
	assert.True(t, errors.Is(err, clinic.ErrInvalidInput), "unknown specialty: %v", err)

	got, err := repos.Owners.FindByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Pets, 1)
	assert.Equal(t, "Max", got.Pets[0].Name)
}
