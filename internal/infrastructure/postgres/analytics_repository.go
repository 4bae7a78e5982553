package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y el
// reporte completo. Toda suma usa COALESCE para devolver cero cuando
// el período no tiene filas.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// sumQuery ejecuta una suma escalar con rango de fechas y filtros
// opcionales de vehículo/funcionario.
func (r *AnalyticsRepo) sumQuery(ctx context.Context, table, column string, p period.Period, f repository.AggregateFilter) (decimal.Decimal, error) {
	query := fmt.Sprintf(`SELECT COALESCE(SUM(%s), 0) FROM %s WHERE date BETWEEN $1 AND $2`, column, table)
	args := []any{p.Start, p.End}
	if f.VehicleID != "" {
		args = append(args, f.VehicleID)
		query += fmt.Sprintf(` AND vehicle_id = $%d`, len(args))
	}
	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		query += fmt.Sprintf(` AND employee_id = $%d`, len(args))
	}
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum %s.%s: %w", table, column, err)
	}
	return total, nil
}

// SumRevenue total de ingresos del período.
func (r *AnalyticsRepo) SumRevenue(ctx context.Context, p period.Period, f repository.AggregateFilter) (decimal.Decimal, error) {
	return r.sumQuery(ctx, "revenues", "amount", p, f)
}

// SumRefuelingCost total de combustible del período.
func (r *AnalyticsRepo) SumRefuelingCost(ctx context.Context, p period.Period, f repository.AggregateFilter) (decimal.Decimal, error) {
	return r.sumQuery(ctx, "refuelings", "total_cost", p, f)
}

// SumMaintenanceCost total de mantenimiento del período.
func (r *AnalyticsRepo) SumMaintenanceCost(ctx context.Context, p period.Period, f repository.AggregateFilter) (decimal.Decimal, error) {
	if f.EmployeeID != "" {
		// mantenimientos no tienen funcionario asociado
		return decimal.Zero, nil
	}
	return r.sumQuery(ctx, "maintenances", "cost", p, f)
}

// SumGeneralExpenses total de gastos generales del período.
func (r *AnalyticsRepo) SumGeneralExpenses(ctx context.Context, p period.Period) (decimal.Decimal, error) {
	return r.sumQuery(ctx, "general_expenses", "amount", p, repository.AggregateFilter{})
}

// CountVehiclesByStatus cuenta vehículos en un estado dado.
func (r *AnalyticsRepo) CountVehiclesByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count vehicles: %w", err)
	}
	return n, nil
}

// CountEmployeesByStatus cuenta funcionarios en un estado dado.
func (r *AnalyticsRepo) CountEmployeesByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// CostsPerVehicle agrega combustible y mantenimiento por vehículo en
// una sola consulta, ordenado por placa. Vehículos sin gasto en el
// período salen con ceros.
func (r *AnalyticsRepo) CostsPerVehicle(ctx context.Context, p period.Period, onlyActive bool) ([]repository.VehicleCostRow, error) {
	query := `
		SELECT v.id, v.plate,
			COALESCE(rf.total, 0) AS refueling_cost,
			COALESCE(mt.total, 0) AS maintenance_cost
		FROM vehicles v
		LEFT JOIN (
			SELECT vehicle_id, SUM(total_cost) AS total
			FROM refuelings WHERE date BETWEEN $1 AND $2 GROUP BY vehicle_id
		) rf ON rf.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id, SUM(cost) AS total
			FROM maintenances WHERE date BETWEEN $1 AND $2 GROUP BY vehicle_id
		) mt ON mt.vehicle_id = v.id`
	args := []any{p.Start, p.End}
	if onlyActive {
		args = append(args, entity.VehicleStatusActive)
		query += fmt.Sprintf(` WHERE v.status = $%d`, len(args))
	}
	query += ` ORDER BY v.plate ASC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("costs per vehicle: %w", err)
	}
	defer rows.Close()
	var list []repository.VehicleCostRow
	for rows.Next() {
		var row repository.VehicleCostRow
		if err := rows.Scan(&row.VehicleID, &row.Plate, &row.RefuelingCost, &row.MaintenanceCost); err != nil {
			return nil, fmt.Errorf("scan vehicle cost: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// RevenuesInPeriod ingresos del período con rótulos, orden cronológico.
func (r *AnalyticsRepo) RevenuesInPeriod(ctx context.Context, p period.Period) ([]repository.RevenueRow, error) {
	query := `
		SELECT rv.id, rv.date, rv.description, rv.amount, rv.vehicle_id, rv.employee_id,
			rv.created_at, rv.updated_at, COALESCE(v.plate, ''), COALESCE(e.name, '')
		FROM revenues rv
		LEFT JOIN vehicles v ON v.id = rv.vehicle_id
		LEFT JOIN employees e ON e.id = rv.employee_id
		WHERE rv.date BETWEEN $1 AND $2
		ORDER BY rv.date ASC, rv.created_at ASC`
	rows, err := r.pool.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("revenues in period: %w", err)
	}
	defer rows.Close()
	var list []repository.RevenueRow
	for rows.Next() {
		var row repository.RevenueRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.Description, &row.Amount, &row.VehicleID, &row.EmployeeID,
			&row.CreatedAt, &row.UpdatedAt, &row.VehiclePlate, &row.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// RefuelingsInPeriod abastecimientos del período con rótulos, orden cronológico.
func (r *AnalyticsRepo) RefuelingsInPeriod(ctx context.Context, p period.Period) ([]repository.RefuelingRow, error) {
	query := `
		SELECT rf.id, rf.date, rf.liters, rf.price_per_liter, rf.total_cost, rf.vehicle_km,
			rf.vehicle_id, rf.employee_id, rf.created_at, rf.updated_at,
			v.plate, v.model, e.name
		FROM refuelings rf
		JOIN vehicles v ON v.id = rf.vehicle_id
		JOIN employees e ON e.id = rf.employee_id
		WHERE rf.date BETWEEN $1 AND $2
		ORDER BY rf.date ASC, rf.created_at ASC`
	rows, err := r.pool.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("refuelings in period: %w", err)
	}
	defer rows.Close()
	var list []repository.RefuelingRow
	for rows.Next() {
		var row repository.RefuelingRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.Liters, &row.PricePerLiter, &row.TotalCost, &row.VehicleKM,
			&row.VehicleID, &row.EmployeeID, &row.CreatedAt, &row.UpdatedAt,
			&row.VehiclePlate, &row.VehicleModel, &row.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("scan refueling: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// MaintenancesInPeriod mantenimientos del período con rótulos, orden cronológico.
func (r *AnalyticsRepo) MaintenancesInPeriod(ctx context.Context, p period.Period) ([]repository.MaintenanceRow, error) {
	query := `
		SELECT m.id, m.date, m.description, m.cost, m.vehicle_id, m.created_at, m.updated_at,
			v.plate, v.model
		FROM maintenances m
		JOIN vehicles v ON v.id = m.vehicle_id
		WHERE m.date BETWEEN $1 AND $2
		ORDER BY m.date ASC, m.created_at ASC`
	rows, err := r.pool.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("maintenances in period: %w", err)
	}
	defer rows.Close()
	var list []repository.MaintenanceRow
	for rows.Next() {
		var row repository.MaintenanceRow
		if err := rows.Scan(
			&row.ID, &row.Date, &row.Description, &row.Cost, &row.VehicleID,
			&row.CreatedAt, &row.UpdatedAt, &row.VehiclePlate, &row.VehicleModel,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GeneralExpensesInPeriod gastos generales del período, orden cronológico.
func (r *AnalyticsRepo) GeneralExpensesInPeriod(ctx context.Context, p period.Period) ([]*entity.GeneralExpense, error) {
	query := `
		SELECT id, date, description, category, amount, created_at, updated_at
		FROM general_expenses WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC, created_at ASC`
	rows, err := r.pool.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("general expenses in period: %w", err)
	}
	defer rows.Close()
	var list []*entity.GeneralExpense
	for rows.Next() {
		var g entity.GeneralExpense
		if err := rows.Scan(&g.ID, &g.Date, &g.Description, &g.Category, &g.Amount, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan general expense: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
