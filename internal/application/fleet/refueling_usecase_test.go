package fleet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/application/fleet"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de abastecimientos
// ──────────────────────────────────────────────────────────────────────────────

type memRefuelingRepo struct {
	byID map[string]*entity.Refueling
}

func newMemRefuelingRepo() *memRefuelingRepo {
	return &memRefuelingRepo{byID: map[string]*entity.Refueling{}}
}

func (m *memRefuelingRepo) Create(r *entity.Refueling) error {
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *memRefuelingRepo) GetByID(id string) (*entity.Refueling, error) {
	if r, ok := m.byID[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m *memRefuelingRepo) List(vehicleID string) ([]repository.RefuelingRow, error) {
	var out []repository.RefuelingRow
	for _, r := range m.byID {
		if vehicleID == "" || r.VehicleID == vehicleID {
			out = append(out, repository.RefuelingRow{Refueling: *r})
		}
	}
	return out, nil
}

func (m *memRefuelingRepo) Update(r *entity.Refueling) error {
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *memRefuelingRepo) Delete(id string) error {
	delete(m.byID, id)
	return nil
}

// vehicleRepoWith da de alta un vehículo conocido para las validaciones
// de FK del caso de uso.
func vehicleRepoWith(id string) *memVehicleRepo {
	repo := newMemVehicleRepo()
	_ = repo.Create(&entity.Vehicle{
		ID:     id,
		Plate:  "ABC1D23",
		Model:  "Sprinter",
		Status: entity.VehicleStatusActive,
	})
	return repo
}

func validRefuelingRequest() dto.RefuelingRequest {
	return dto.RefuelingRequest{
		Date:          "2026-01-15",
		Liters:        decimal.NewFromFloat(42.5),
		PricePerLiter: decimal.NewFromFloat(5.80),
		VehicleKM:     decimal.NewFromInt(35400),
		VehicleID:     "v1",
		EmployeeID:    "e1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// El costo total lo calcula el servidor: liters × price_per_liter.
func TestRefuelingCreate_CalculaCostoTotal(t *testing.T) {
	uc := fleet.NewRefuelingUseCase(newMemRefuelingRepo(), vehicleRepoWith("v1"))

	out, err := uc.Create(validRefuelingRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	expected := decimal.NewFromFloat(42.5).Mul(decimal.NewFromFloat(5.80))
	assert.True(t, out.TotalCost.Equal(expected), "42.5 × 5.80 = 246.50")
	assert.Equal(t, "2026-01-15", out.Date, "la fecha viaja como string literal")
}

func TestRefuelingCreate_VehiculoInexistente(t *testing.T) {
	uc := fleet.NewRefuelingUseCase(newMemRefuelingRepo(), newMemVehicleRepo())

	_, err := uc.Create(validRefuelingRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRefuelingCreate_Validaciones(t *testing.T) {
	uc := fleet.NewRefuelingUseCase(newMemRefuelingRepo(), vehicleRepoWith("v1"))

	fechaInvalida := validRefuelingRequest()
	fechaInvalida.Date = "15/01/2026"
	_, err := uc.Create(fechaInvalida)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	litrosCero := validRefuelingRequest()
	litrosCero.Liters = decimal.Zero
	_, err = uc.Create(litrosCero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sinFuncionario := validRefuelingRequest()
	sinFuncionario.EmployeeID = ""
	_, err = uc.Create(sinFuncionario)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	kmNegativo := validRefuelingRequest()
	kmNegativo.VehicleKM = decimal.NewFromInt(-5)
	_, err = uc.Create(kmNegativo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Al editar litros o precio el costo total se recalcula, nunca se
// arrastra el valor anterior.
func TestRefuelingUpdate_RecalculaCostoTotal(t *testing.T) {
	uc := fleet.NewRefuelingUseCase(newMemRefuelingRepo(), vehicleRepoWith("v1"))

	created, err := uc.Create(validRefuelingRequest())
	require.NoError(t, err)

	in := validRefuelingRequest()
	in.Liters = decimal.NewFromInt(50)
	in.PricePerLiter = decimal.NewFromInt(6)
	out, err := uc.Update(created.ID, in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.TotalCost.Equal(decimal.NewFromInt(300)), "50 × 6 = 300")
}

func TestRefuelingUpdate_Inexistente(t *testing.T) {
	uc := fleet.NewRefuelingUseCase(newMemRefuelingRepo(), vehicleRepoWith("v1"))

	out, err := uc.Update("no-existe", validRefuelingRequest())
	require.NoError(t, err)
	assert.Nil(t, out)
}
