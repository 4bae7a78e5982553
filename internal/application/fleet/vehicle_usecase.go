package fleet

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// VehicleUseCase casos de uso CRUD para vehículos.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func validVehicleStatus(s string) bool {
	switch s {
	case entity.VehicleStatusActive, entity.VehicleStatusInactive, entity.VehicleStatusMaintenance:
		return true
	}
	return false
}

// Create registra un vehículo nuevo. La placa se normaliza a mayúsculas
// y debe ser única en la flota.
func (uc *VehicleUseCase) Create(in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	in.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	if in.Plate == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.VehicleStatusActive
	}
	if !validVehicleStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialKM.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByPlate(in.Plate)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	vehicle := &entity.Vehicle{
		ID:           uuid.New().String(),
		Plate:        in.Plate,
		Model:        in.Model,
		Manufacturer: in.Manufacturer,
		Year:         in.Year,
		InitialKM:    in.InitialKM,
		Renavam:      in.Renavam,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *VehicleUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	return toVehicleResponse(vehicle), nil
}

// List lista vehículos, opcionalmente filtrados por estado.
func (uc *VehicleUseCase) List(status string) ([]dto.VehicleResponse, error) {
	if status != "" && !validVehicleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return items, nil
}

// Update actualiza un vehículo. Si la placa cambia, la nueva también
// debe ser única.
func (uc *VehicleUseCase) Update(id string, in dto.VehicleRequest) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	in.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	if in.Plate == "" || in.Model == "" || !validVehicleStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialKM.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Plate != vehicle.Plate {
		existing, _ := uc.repo.GetByPlate(in.Plate)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	vehicle.Plate = in.Plate
	vehicle.Model = in.Model
	vehicle.Manufacturer = in.Manufacturer
	vehicle.Year = in.Year
	vehicle.InitialKM = in.InitialKM
	vehicle.Renavam = in.Renavam
	vehicle.Status = in.Status
	vehicle.UpdatedAt = time.Now()
	if err := uc.repo.Update(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// Delete elimina un vehículo por ID.
func (uc *VehicleUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:           v.ID,
		Plate:        v.Plate,
		Model:        v.Model,
		Manufacturer: v.Manufacturer,
		Year:         v.Year,
		InitialKM:    v.InitialKM,
		Renavam:      v.Renavam,
		Status:       v.Status,
	}
}
