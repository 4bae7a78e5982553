package repository

import "github.com/scala-gestao/frota-api/internal/domain/entity"

// EmployeeSalaryRepository acceso a persistencia de salarios mensuales.
type EmployeeSalaryRepository interface {
	// Upsert inserta el registro o actualiza monto y notas si ya existe
	// uno para la pareja (employee_id, period).
	Upsert(s *entity.EmployeeSalary) error
	// ListByEmployee ordena por período descendente.
	ListByEmployee(employeeID string) ([]*entity.EmployeeSalary, error)
	Delete(id string) error
}
