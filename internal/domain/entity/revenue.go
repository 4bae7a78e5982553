package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue representa un ingreso (viaje, flete, alquiler...).
// Los vínculos a vehículo y funcionario son opcionales.
type Revenue struct {
	ID          string
	Date        string // yyyy-MM-dd
	Description string
	Amount      decimal.Decimal
	VehicleID   *string
	EmployeeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
