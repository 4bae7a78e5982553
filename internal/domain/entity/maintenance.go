package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Maintenance representa un mantenimiento realizado sobre un vehículo.
type Maintenance struct {
	ID          string
	Date        string // yyyy-MM-dd
	Description string
	Cost        decimal.Decimal
	VehicleID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
