package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// RefuelingRow abastecimiento con los rótulos de sus entidades
// relacionadas ya resueltos (placa/modelo del vehículo, nombre del
// funcionario) para listados y tablas del reporte.
type RefuelingRow struct {
	entity.Refueling
	VehiclePlate string
	VehicleModel string
	EmployeeName string
}

// RefuelingRepository acceso a persistencia de abastecimientos.
type RefuelingRepository interface {
	Create(r *entity.Refueling) error
	GetByID(id string) (*entity.Refueling, error)
	// List devuelve abastecimientos con rótulos, ordenados por fecha
	// descendente. vehicleID vacío = toda la flota.
	List(vehicleID string) ([]RefuelingRow, error)
	Update(r *entity.Refueling) error
	Delete(id string) error
}
