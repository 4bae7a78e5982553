package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refueling representa un abastecimiento de combustible.
//
// TotalCost se almacena al registrar (liters × price_per_liter) y se
// trata como la cifra de verdad en toda la agregación; no se recalcula
// en lectura.
type Refueling struct {
	ID            string
	Date          string // fecha literal yyyy-MM-dd, sin zona horaria
	Liters        decimal.Decimal
	PricePerLiter decimal.Decimal
	TotalCost     decimal.Decimal
	VehicleKM     decimal.Decimal // lectura del odómetro al abastecer
	VehicleID     string
	EmployeeID    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
