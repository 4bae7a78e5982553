package fleet

import (
	"time"

	"github.com/google/uuid"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// RefuelingUseCase casos de uso CRUD para abastecimientos. El costo
// total se calcula aquí (liters × price_per_liter) y se persiste; las
// agregaciones posteriores leen la cifra almacenada.
type RefuelingUseCase struct {
	repo        repository.RefuelingRepository
	vehicleRepo repository.VehicleRepository
}

// NewRefuelingUseCase construye el caso de uso.
func NewRefuelingUseCase(repo repository.RefuelingRepository, vehicleRepo repository.VehicleRepository) *RefuelingUseCase {
	return &RefuelingUseCase{repo: repo, vehicleRepo: vehicleRepo}
}

func (uc *RefuelingUseCase) validate(in dto.RefuelingRequest) error {
	if !validDate(in.Date) || in.VehicleID == "" || in.EmployeeID == "" {
		return domain.ErrInvalidInput
	}
	if !in.Liters.IsPositive() || in.PricePerLiter.IsNegative() || in.VehicleKM.IsNegative() {
		return domain.ErrInvalidInput
	}
	vehicle, err := uc.vehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Create registra un abastecimiento.
func (uc *RefuelingUseCase) Create(in dto.RefuelingRequest) (*dto.RefuelingResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	refueling := &entity.Refueling{
		ID:            uuid.New().String(),
		Date:          in.Date,
		Liters:        in.Liters,
		PricePerLiter: in.PricePerLiter,
		TotalCost:     in.Liters.Mul(in.PricePerLiter),
		VehicleKM:     in.VehicleKM,
		VehicleID:     in.VehicleID,
		EmployeeID:    in.EmployeeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(refueling); err != nil {
		return nil, err
	}
	return toRefuelingResponse(refueling, "", ""), nil
}

// GetByID obtiene un abastecimiento por ID.
func (uc *RefuelingUseCase) GetByID(id string) (*dto.RefuelingResponse, error) {
	refueling, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if refueling == nil {
		return nil, nil
	}
	return toRefuelingResponse(refueling, "", ""), nil
}

// List lista abastecimientos con rótulos, opcionalmente por vehículo.
func (uc *RefuelingUseCase) List(vehicleID string) ([]dto.RefuelingResponse, error) {
	rows, err := uc.repo.List(vehicleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RefuelingResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toRefuelingResponse(&row.Refueling, row.VehiclePlate, row.EmployeeName))
	}
	return items, nil
}

// Update actualiza un abastecimiento y recalcula el costo total.
func (uc *RefuelingUseCase) Update(id string, in dto.RefuelingRequest) (*dto.RefuelingResponse, error) {
	refueling, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if refueling == nil {
		return nil, nil
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	refueling.Date = in.Date
	refueling.Liters = in.Liters
	refueling.PricePerLiter = in.PricePerLiter
	refueling.TotalCost = in.Liters.Mul(in.PricePerLiter)
	refueling.VehicleKM = in.VehicleKM
	refueling.VehicleID = in.VehicleID
	refueling.EmployeeID = in.EmployeeID
	refueling.UpdatedAt = time.Now()
	if err := uc.repo.Update(refueling); err != nil {
		return nil, err
	}
	return toRefuelingResponse(refueling, "", ""), nil
}

// Delete elimina un abastecimiento por ID.
func (uc *RefuelingUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toRefuelingResponse(r *entity.Refueling, plate, employeeName string) *dto.RefuelingResponse {
	if r == nil {
		return nil
	}
	return &dto.RefuelingResponse{
		ID:            r.ID,
		Date:          r.Date,
		Liters:        r.Liters,
		PricePerLiter: r.PricePerLiter,
		TotalCost:     r.TotalCost,
		VehicleKM:     r.VehicleKM,
		VehicleID:     r.VehicleID,
		VehiclePlate:  plate,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  employeeName,
	}
}
