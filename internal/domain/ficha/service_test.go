package ficha

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) []Ficha {
	args := m.Called(ctx)
	return args.Get(0).([]Ficha)
}

func (m *MockRepository) Save(ctx context.Context, fichas []Ficha) {
	m.Called(ctx, fichas)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func sampleFicha(nombre string, edad int, ciudad string) Ficha {
	return Ficha{
		ID:            "id-" + nombre,
		Nombre:        nombre,
		Edad:          edad,
		Ciudad:        ciudad,
		FechaCreacion: time.Now(),
	}
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]Ficha{})
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(fichas []Ficha) bool {
		return len(fichas) == 1 && fichas[0].Nombre == "Ana" && fichas[0].ID != ""
	})).Return()

	f, err := service.Create(context.Background(), "  Ana ", 30, "Madrid", false)
	require.NoError(t, err)
	assert.Equal(t, "Ana", f.Nombre)
	assert.Equal(t, 30, f.Edad)
	assert.Equal(t, "Madrid", f.Ciudad)
	assert.NotEmpty(t, f.ID)
	assert.False(t, f.FechaCreacion.IsZero())
	assert.Nil(t, f.FechaModificacion)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		nombre string
		edad   int
		ciudad string
	}{
		{
			name:   "numeric nombre",
			nombre: "42",
			edad:   30,
			ciudad: "Madrid",
		},
		{
			name:   "empty nombre",
			nombre: "",
			edad:   30,
			ciudad: "Madrid",
		},
		{
			name:   "negative edad",
			nombre: "Ana",
			edad:   -1,
			ciudad: "Madrid",
		},
		{
			name:   "zero edad",
			nombre: "Ana",
			edad:   0,
			ciudad: "Madrid",
		},
		{
			name:   "numeric ciudad",
			nombre: "Ana",
			edad:   30,
			ciudad: "12345",
		},
		{
			name:   "empty ciudad",
			nombre: "Ana",
			edad:   30,
			ciudad: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Create(context.Background(), tt.nombre, tt.edad, tt.ciudad, false)
			assert.ErrorIs(t, err, ErrInvalid)

			// The backing collection is untouched.
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	existing := sampleFicha("Ana", 30, "Madrid")
	mockRepo.On("Load", mock.Anything).Return([]Ficha{existing})

	// Case-folded clash is advisory.
	_, err := service.Create(context.Background(), "ana", 25, "Sevilla", false)
	assert.ErrorIs(t, err, ErrDuplicateName)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	// The caller may decide to allow it.
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(fichas []Ficha) bool {
		return len(fichas) == 2
	})).Return()

	f, err := service.Create(context.Background(), "ana", 25, "Sevilla", true)
	require.NoError(t, err)
	assert.Equal(t, "ana", f.Nombre)
}

func TestService_SearchByName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	fichas := []Ficha{
		sampleFicha("Ana María", 30, "Madrid"),
		sampleFicha("Luis", 41, "Bilbao"),
		sampleFicha("Mariano", 52, "Valencia"),
	}
	mockRepo.On("Load", mock.Anything).Return(fichas)

	matches := service.SearchByName(context.Background(), "mari")
	require.Len(t, matches, 2)

	// Original ordering and positions preserved.
	assert.Equal(t, 0, matches[0].Index)
	assert.Equal(t, "Ana María", matches[0].Ficha.Nombre)
	assert.Equal(t, 2, matches[1].Index)
	assert.Equal(t, "Mariano", matches[1].Ficha.Nombre)

	assert.Empty(t, service.SearchByName(context.Background(), "zzz"))
}

func TestService_FindByID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	fichas := []Ficha{
		sampleFicha("Ana", 30, "Madrid"),
		sampleFicha("Luis", 41, "Bilbao"),
	}
	mockRepo.On("Load", mock.Anything).Return(fichas)

	idx, f, err := service.FindByID(context.Background(), "id-Luis")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Luis", f.Nombre)

	_, _, err = service.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	fichas := []Ficha{sampleFicha("Ana", 30, "Madrid")}

	var saved []Ficha
	mockRepo.On("Load", mock.Anything).Return(fichas)
	mockRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]Ficha)
	}).Return()

	ciudad := "Sevilla"
	f, err := service.Update(context.Background(), 0, Changes{Ciudad: &ciudad})
	require.NoError(t, err)

	assert.Equal(t, "Sevilla", f.Ciudad)
	assert.Equal(t, "Ana", f.Nombre)
	require.NotNil(t, f.FechaModificacion)

	require.Len(t, saved, 1)
	assert.Equal(t, "Sevilla", saved[0].Ciudad)
}

func TestService_Update_InvalidChanges(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]Ficha{sampleFicha("Ana", 30, "Madrid")})

	edad := -5
	_, err := service.Update(context.Background(), 0, Changes{Edad: &edad})
	assert.ErrorIs(t, err, ErrInvalid)

	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Update_IndexOutOfRange(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]Ficha{})

	_, err := service.Update(context.Background(), 3, Changes{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	fichas := []Ficha{
		sampleFicha("Ana", 30, "Madrid"),
		sampleFicha("Luis", 41, "Bilbao"),
	}

	var saved []Ficha
	mockRepo.On("Load", mock.Anything).Return(fichas)
	mockRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]Ficha)
	}).Return()

	removed, err := service.Delete(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Ana", removed.Nombre)

	require.Len(t, saved, 1)
	assert.Equal(t, "Luis", saved[0].Nombre)
}

func TestService_Delete_IndexOutOfRange(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]Ficha{})

	_, err := service.Delete(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_RepairIDs(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	legacy := sampleFicha("Ana", 30, "Madrid")
	legacy.ID = ""
	fichas := []Ficha{legacy, sampleFicha("Luis", 41, "Bilbao")}

	var saved []Ficha
	mockRepo.On("Load", mock.Anything).Return(fichas)
	mockRepo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]Ficha)
	}).Return()

	repaired, err := service.RepairIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)
	assert.Equal(t, "id-Luis", saved[1].ID)
}

func TestService_RepairIDs_NothingToDo(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Load", mock.Anything).Return([]Ficha{sampleFicha("Ana", 30, "Madrid")})

	repaired, err := service.RepairIDs(context.Background())
	require.NoError(t, err)
	assert.Zero(t, repaired)

	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
