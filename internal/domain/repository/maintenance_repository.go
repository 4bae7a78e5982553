package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// MaintenanceRow mantenimiento con los rótulos del vehículo resueltos.
type MaintenanceRow struct {
	entity.Maintenance
	VehiclePlate string
	VehicleModel string
}

// MaintenanceRepository acceso a persistencia de mantenimientos.
type MaintenanceRepository interface {
	Create(m *entity.Maintenance) error
	GetByID(id string) (*entity.Maintenance, error)
	// List ordena por fecha descendente. vehicleID vacío = toda la flota.
	List(vehicleID string) ([]MaintenanceRow, error)
	Update(m *entity.Maintenance) error
	Delete(id string) error
}
