package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un funcionario.
const (
	EmployeeStatusActive   = "ativo"
	EmployeeStatusInactive = "inativo"
)

// Employee representa un funcionario (conductor, mecánico, administrativo...).
type Employee struct {
	ID        string
	Name      string
	Role      string
	Salary    *decimal.Decimal // opcional; nil si no está registrado
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
