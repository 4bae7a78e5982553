package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
)

// AggregateFilter acota una suma a un vehículo o funcionario concreto.
// Campos vacíos = sin filtro.
type AggregateFilter struct {
	VehicleID  string
	EmployeeID string
}

// VehicleCostRow costos de combustible y mantenimiento de un vehículo
// dentro de un período, ya agregados por la base de datos.
type VehicleCostRow struct {
	VehicleID       string
	Plate           string
	RefuelingCost   decimal.Decimal
	MaintenanceCost decimal.Decimal
}

// TotalCost suma ambas categorías de costo.
func (r VehicleCostRow) TotalCost() decimal.Decimal {
	return r.RefuelingCost.Add(r.MaintenanceCost)
}

// AnalyticsRepository consultas read-only de agregación para el
// dashboard y el reporte. Toda suma devuelve cero cuando el período no
// tiene filas (COALESCE en SQL): cero no es un error.
type AnalyticsRepository interface {
	SumRevenue(ctx context.Context, p period.Period, f AggregateFilter) (decimal.Decimal, error)
	SumRefuelingCost(ctx context.Context, p period.Period, f AggregateFilter) (decimal.Decimal, error)
	SumMaintenanceCost(ctx context.Context, p period.Period, f AggregateFilter) (decimal.Decimal, error)
	SumGeneralExpenses(ctx context.Context, p period.Period) (decimal.Decimal, error)

	CountVehiclesByStatus(ctx context.Context, status string) (int, error)
	CountEmployeesByStatus(ctx context.Context, status string) (int, error)

	// CostsPerVehicle agrega combustible y mantenimiento por vehículo
	// en una sola consulta, ordenado por placa.
	CostsPerVehicle(ctx context.Context, p period.Period, onlyActive bool) ([]VehicleCostRow, error)

	// Lecturas del período para el reporte completo, con los rótulos de
	// entidades relacionadas resueltos y orden cronológico ascendente.
	RevenuesInPeriod(ctx context.Context, p period.Period) ([]RevenueRow, error)
	RefuelingsInPeriod(ctx context.Context, p period.Period) ([]RefuelingRow, error)
	MaintenancesInPeriod(ctx context.Context, p period.Period) ([]MaintenanceRow, error)
	GeneralExpensesInPeriod(ctx context.Context, p period.Period) ([]*entity.GeneralExpense, error)
}
