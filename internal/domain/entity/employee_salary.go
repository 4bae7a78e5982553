package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeSalary registra el salario pagado a un funcionario en un
// período mensual. La pareja (employee_id, period) es única.
type EmployeeSalary struct {
	ID         string
	EmployeeID string
	Period     string // YYYY-MM
	Amount     decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
