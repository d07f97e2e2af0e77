package clinic

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mocks de los puertos para testear la fachada sin storage.

type ownerRepoMock struct{ mock.Mock }

func (m *ownerRepoMock) FindAll(ctx context.Context) ([]*Owner, error) {
	args := m.Called(ctx)
	owners, _ := args.Get(0).([]*Owner)
	return owners, args.Error(1)
}

func (m *ownerRepoMock) FindByID(ctx context.Context, id int) (*Owner, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*Owner)
	return o, args.Error(1)
}

func (m *ownerRepoMock) FindByLastName(ctx context.Context, lastName string) ([]*Owner, error) {
	args := m.Called(ctx, lastName)
	owners, _ := args.Get(0).([]*Owner)
	return owners, args.Error(1)
}

func (m *ownerRepoMock) Save(ctx context.Context, o *Owner) error {
	return m.Called(ctx, o).Error(0)
}

func (m *ownerRepoMock) Delete(ctx context.Context, o *Owner) error {
	return m.Called(ctx, o).Error(0)
}

type petRepoMock struct{ mock.Mock }

func (m *petRepoMock) FindAll(ctx context.Context) ([]*Pet, error) {
	args := m.Called(ctx)
	pets, _ := args.Get(0).([]*Pet)
	return pets, args.Error(1)
}

func (m *petRepoMock) FindByID(ctx context.Context, id int) (*Pet, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*Pet)
	return p, args.Error(1)
}

func (m *petRepoMock) Save(ctx context.Context, p *Pet) error {
	return m.Called(ctx, p).Error(0)
}

func (m *petRepoMock) Delete(ctx context.Context, p *Pet) error {
	return m.Called(ctx, p).Error(0)
}

type petTypeRepoMock struct{ mock.Mock }

func (m *petTypeRepoMock) FindAll(ctx context.Context) ([]*PetType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]*PetType)
	return types, args.Error(1)
}

func (m *petTypeRepoMock) FindByID(ctx context.Context, id int) (*PetType, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*PetType)
	return t, args.Error(1)
}

func (m *petTypeRepoMock) Save(ctx context.Context, t *PetType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *petTypeRepoMock) Delete(ctx context.Context, t *PetType) error {
	return m.Called(ctx, t).Error(0)
}

type vetRepoMock struct{ mock.Mock }

func (m *vetRepoMock) FindAll(ctx context.Context) ([]*Vet, error) {
	args := m.Called(ctx)
	vets, _ := args.Get(0).([]*Vet)
	return vets, args.Error(1)
}

func (m *vetRepoMock) FindByID(ctx context.Context, id int) (*Vet, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*Vet)
	return v, args.Error(1)
}

func (m *vetRepoMock) Save(ctx context.Context, v *Vet) error {
	return m.Called(ctx, v).Error(0)
}

func (m *vetRepoMock) Delete(ctx context.Context, v *Vet) error {
	return m.Called(ctx, v).Error(0)
}

type specialtyRepoMock struct{ mock.Mock }

func (m *specialtyRepoMock) FindAll(ctx context.Context) ([]*Specialty, error) {
	args := m.Called(ctx)
	specs, _ := args.Get(0).([]*Specialty)
	return specs, args.Error(1)
}

func (m *specialtyRepoMock) FindByID(ctx context.Context, id int) (*Specialty, error) {
	args := m.Called(ctx, id)
	sp, _ := args.Get(0).(*Specialty)
	return sp, args.Error(1)
}

func (m *specialtyRepoMock) Save(ctx context.Context, sp *Specialty) error {
	return m.Called(ctx, sp).Error(0)
}

func (m *specialtyRepoMock) Delete(ctx context.Context, sp *Specialty) error {
	return m.Called(ctx, sp).Error(0)
}

type visitRepoMock struct{ mock.Mock }

func (m *visitRepoMock) FindByID(ctx context.Context, id int) (*Visit, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*Visit)
	return v, args.Error(1)
}

func (m *visitRepoMock) FindByPetID(ctx context.Context, petID int) ([]*Visit, error) {
	args := m.Called(ctx, petID)
	visits, _ := args.Get(0).([]*Visit)
	return visits, args.Error(1)
}

func (m *visitRepoMock) Save(ctx context.Context, v *Visit) error {
	return m.Called(ctx, v).Error(0)
}

func (m *visitRepoMock) Delete(ctx context.Context, v *Visit) error {
	return m.Called(ctx, v).Error(0)
}

type repoMocks struct {
	owners      *ownerRepoMock
	pets        *petRepoMock
	petTypes    *petTypeRepoMock
	vets        *vetRepoMock
	specialties *specialtyRepoMock
	visits      *visitRepoMock
}

func newMockedService() (*Service, *repoMocks) {
	m := &repoMocks{
		owners:      &ownerRepoMock{},
		pets:        &petRepoMock{},
		petTypes:    &petTypeRepoMock{},
		vets:        &vetRepoMock{},
		specialties: &specialtyRepoMock{},
		visits:      &visitRepoMock{},
	}
	svc := NewService(Repositories{
		Owners:      m.owners,
		Pets:        m.pets,
		PetTypes:    m.petTypes,
		Vets:        m.vets,
		Specialties: m.specialties,
		Visits:      m.visits,
	})
	return svc, m
}

// assertAll verifica expectativas de todos los mocks; cualquier llamada no
// esperada ya hace fallar al mock en el momento.
func (m *repoMocks) assertAll(t mock.TestingT) {
	m.owners.AssertExpectations(t)
	m.pets.AssertExpectations(t)
	m.petTypes.AssertExpectations(t)
	m.vets.AssertExpectations(t)
	m.specialties.AssertExpectations(t)
	m.visits.AssertExpectations(t)
}
