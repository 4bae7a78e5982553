package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// EmployeeRepository acceso a persistencia de funcionarios.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	// List devuelve los funcionarios ordenados por nombre.
	// status vacío = todos los estados.
	List(status string) ([]*entity.Employee, error)
	Update(e *entity.Employee) error
	Delete(id string) error
}
