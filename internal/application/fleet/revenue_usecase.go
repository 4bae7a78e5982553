package fleet

import (
	"time"

	"github.com/google/uuid"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// RevenueUseCase casos de uso CRUD para ingresos. Los vínculos a
// vehículo y funcionario son opcionales; cuando vienen, deben existir.
type RevenueUseCase struct {
	repo         repository.RevenueRepository
	vehicleRepo  repository.VehicleRepository
	employeeRepo repository.EmployeeRepository
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(repo repository.RevenueRepository, vehicleRepo repository.VehicleRepository, employeeRepo repository.EmployeeRepository) *RevenueUseCase {
	return &RevenueUseCase{repo: repo, vehicleRepo: vehicleRepo, employeeRepo: employeeRepo}
}

func (uc *RevenueUseCase) validate(in dto.RevenueRequest) error {
	if !validDate(in.Date) || in.Description == "" {
		return domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return domain.ErrInvalidInput
	}
	if in.VehicleID != nil && *in.VehicleID != "" {
		vehicle, err := uc.vehicleRepo.GetByID(*in.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return domain.ErrNotFound
		}
	}
	if in.EmployeeID != nil && *in.EmployeeID != "" {
		employee, err := uc.employeeRepo.GetByID(*in.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// normalizeRef convierte punteros a cadena vacía en nil.
func normalizeRef(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// Create registra un ingreso.
func (uc *RevenueUseCase) Create(in dto.RevenueRequest) (*dto.RevenueResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	revenue := &entity.Revenue{
		ID:          uuid.New().String(),
		Date:        in.Date,
		Description: in.Description,
		Amount:      in.Amount,
		VehicleID:   normalizeRef(in.VehicleID),
		EmployeeID:  normalizeRef(in.EmployeeID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(revenue); err != nil {
		return nil, err
	}
	return toRevenueResponse(revenue, "", ""), nil
}

// GetByID obtiene un ingreso por ID.
func (uc *RevenueUseCase) GetByID(id string) (*dto.RevenueResponse, error) {
	revenue, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return nil, nil
	}
	return toRevenueResponse(revenue, "", ""), nil
}

// List lista ingresos con rótulos por fecha descendente.
func (uc *RevenueUseCase) List() ([]dto.RevenueResponse, error) {
	rows, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RevenueResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toRevenueResponse(&row.Revenue, row.VehiclePlate, row.EmployeeName))
	}
	return items, nil
}

// Update actualiza un ingreso.
func (uc *RevenueUseCase) Update(id string, in dto.RevenueRequest) (*dto.RevenueResponse, error) {
	revenue, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return nil, nil
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	revenue.Date = in.Date
	revenue.Description = in.Description
	revenue.Amount = in.Amount
	revenue.VehicleID = normalizeRef(in.VehicleID)
	revenue.EmployeeID = normalizeRef(in.EmployeeID)
	revenue.UpdatedAt = time.Now()
	if err := uc.repo.Update(revenue); err != nil {
		return nil, err
	}
	return toRevenueResponse(revenue, "", ""), nil
}

// Delete elimina un ingreso por ID.
func (uc *RevenueUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toRevenueResponse(r *entity.Revenue, plate, employeeName string) *dto.RevenueResponse {
	if r == nil {
		return nil
	}
	return &dto.RevenueResponse{
		ID:           r.ID,
		Date:         r.Date,
		Description:  r.Description,
		Amount:       r.Amount,
		VehicleID:    r.VehicleID,
		VehiclePlate: plate,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
	}
}
