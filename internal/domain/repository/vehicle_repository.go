package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// VehicleRepository acceso a persistencia de vehículos.
type VehicleRepository interface {
	Create(v *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	GetByPlate(plate string) (*entity.Vehicle, error)
	// List devuelve los vehículos ordenados por placa.
	// status vacío = todos los estados.
	List(status string) ([]*entity.Vehicle, error)
	Update(v *entity.Vehicle) error
	Delete(id string) error
}
