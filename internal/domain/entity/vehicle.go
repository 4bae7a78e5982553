package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un vehículo.
// Los valores se mantienen en portugués porque así viajan en la base
// de datos y en el frontend del cliente.
const (
	VehicleStatusActive      = "ativo"
	VehicleStatusInactive    = "inativo"
	VehicleStatusMaintenance = "manutencao"
)

// Vehicle representa un vehículo de la flota.
type Vehicle struct {
	ID           string
	Plate        string // placa, única en toda la flota
	Model        string
	Manufacturer string
	Year         int
	InitialKM    decimal.Decimal // odómetro al dar de alta el vehículo
	Renavam      string          // registro nacional brasileño, opcional
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
