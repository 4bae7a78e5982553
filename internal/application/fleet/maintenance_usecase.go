package fleet

import (
	"time"

	"github.com/google/uuid"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// MaintenanceUseCase casos de uso CRUD para mantenimientos.
type MaintenanceUseCase struct {
	repo        repository.MaintenanceRepository
	vehicleRepo repository.VehicleRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, vehicleRepo repository.VehicleRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, vehicleRepo: vehicleRepo}
}

func (uc *MaintenanceUseCase) validate(in dto.MaintenanceRequest) error {
	if !validDate(in.Date) || in.Description == "" || in.VehicleID == "" {
		return domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() {
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

// Create registra un mantenimiento.
func (uc *MaintenanceUseCase) Create(in dto.MaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	maintenance := &entity.Maintenance{
		ID:          uuid.New().String(),
		Date:        in.Date,
		Description: in.Description,
		Cost:        in.Cost,
		VehicleID:   in.VehicleID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(maintenance); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(maintenance, ""), nil
}

// GetByID obtiene un mantenimiento por ID.
func (uc *MaintenanceUseCase) GetByID(id string) (*dto.MaintenanceResponse, error) {
	maintenance, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if maintenance == nil {
		return nil, nil
	}
	return toMaintenanceResponse(maintenance, ""), nil
}

// List lista mantenimientos con rótulos, opcionalmente por vehículo.
func (uc *MaintenanceUseCase) List(vehicleID string) ([]dto.MaintenanceResponse, error) {
	rows, err := uc.repo.List(vehicleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toMaintenanceResponse(&row.Maintenance, row.VehiclePlate))
	}
	return items, nil
}

// Update actualiza un mantenimiento.
func (uc *MaintenanceUseCase) Update(id string, in dto.MaintenanceRequest) (*dto.MaintenanceResponse, error) {
	maintenance, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if maintenance == nil {
		return nil, nil
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	maintenance.Date = in.Date
	maintenance.Description = in.Description
	maintenance.Cost = in.Cost
	maintenance.VehicleID = in.VehicleID
	maintenance.UpdatedAt = time.Now()
	if err := uc.repo.Update(maintenance); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(maintenance, ""), nil
}

// Delete elimina un mantenimiento por ID.
func (uc *MaintenanceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMaintenanceResponse(m *entity.Maintenance, plate string) *dto.MaintenanceResponse {
	if m == nil {
		return nil
	}
	return &dto.MaintenanceResponse{
		ID:           m.ID,
		Date:         m.Date,
		Description:  m.Description,
		Cost:         m.Cost,
		VehicleID:    m.VehicleID,
		VehiclePlate: plate,
	}
}
