package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// RevenueRow ingreso con los rótulos de sus vínculos opcionales.
// Placa/nombre vacíos cuando el ingreso no está vinculado.
type RevenueRow struct {
	entity.Revenue
	VehiclePlate string
	EmployeeName string
}

// RevenueRepository acceso a persistencia de ingresos.
type RevenueRepository interface {
	Create(r *entity.Revenue) error
	GetByID(id string) (*entity.Revenue, error)
	// List ordena por fecha descendente.
	List() ([]RevenueRow, error)
	Update(r *entity.Revenue) error
	Delete(id string) error
}
