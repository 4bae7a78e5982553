package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralExpense representa un gasto no asociado a un vehículo
// (salarios, cuentas, administrativo...). La categoría es texto libre.
type GeneralExpense struct {
	ID          string
	Date        string // yyyy-MM-dd
	Description string
	Category    string
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
