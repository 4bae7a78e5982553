// Package analytics contiene los casos de uso del dashboard de la
// flota: KPIs del período y las series para los gráficos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/application/report"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// trailingMonths meses que cubren las series de evolución.
const trailingMonths = 6

// topVehicles tamaño del ranking de vehículos más costosos.
const topVehicles = 5

// DashboardUseCase agrega las cifras del dashboard. Solo lecturas;
// delega toda suma en AnalyticsRepository (COALESCE a cero en SQL).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetKpis devuelve las tarjetas del dashboard para el período pedido
// (o el mes en curso si el rango no viene completo).
//
// Seis consultas independientes en paralelo: dos counts y cuatro sumas.
func (uc *DashboardUseCase) GetKpis(ctx context.Context, startDate, endDate string) (*dto.KpisDTO, error) {
	p := period.Resolve(startDate, endDate)

	type countResult struct {
		n   int
		err error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}

	vehiclesCh := make(chan countResult, 1)
	employeesCh := make(chan countResult, 1)
	refuelingCh := make(chan sumResult, 1)
	maintenanceCh := make(chan sumResult, 1)
	generalCh := make(chan sumResult, 1)
	revenueCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountVehiclesByStatus(ctx, entity.VehicleStatusActive)
		vehiclesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountEmployeesByStatus(ctx, entity.EmployeeStatusActive)
		employeesCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.SumRefuelingCost(ctx, p, repository.AggregateFilter{})
		refuelingCh <- sumResult{total, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.SumMaintenanceCost(ctx, p, repository.AggregateFilter{})
		maintenanceCh <- sumResult{total, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.SumGeneralExpenses(ctx, p)
		generalCh <- sumResult{total, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.SumRevenue(ctx, p, repository.AggregateFilter{})
		revenueCh <- sumResult{total, err}
	}()

	vehicles := <-vehiclesCh
	employees := <-employeesCh
	refueling := <-refuelingCh
	maintenance := <-maintenanceCh
	general := <-generalCh
	revenue := <-revenueCh

	if vehicles.err != nil {
		return nil, fmt.Errorf("dashboard: count de vehículos: %w", vehicles.err)
	}
	if employees.err != nil {
		return nil, fmt.Errorf("dashboard: count de funcionarios: %w", employees.err)
	}
	if refueling.err != nil {
		return nil, fmt.Errorf("dashboard: suma de combustible: %w", refueling.err)
	}
	if maintenance.err != nil {
		return nil, fmt.Errorf("dashboard: suma de mantenimiento: %w", maintenance.err)
	}
	if general.err != nil {
		return nil, fmt.Errorf("dashboard: suma de gastos generales: %w", general.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: suma de ingresos: %w", revenue.err)
	}

	totalCost := refueling.total.Add(maintenance.total).Add(general.total)
	return &dto.KpisDTO{
		TotalVehicles:     vehicles.n,
		TotalEmployees:    employees.n,
		TotalMonthCost:    totalCost.StringFixed(2),
		TotalMonthRevenue: revenue.total.StringFixed(2),
	}, nil
}

// monthTotals suma costo total (combustible + mantenimiento + gastos
// generales) e ingresos de un mes calendario.
func (uc *DashboardUseCase) monthTotals(ctx context.Context, p period.Period) (cost, revenue decimal.Decimal, err error) {
	refueling, err := uc.analyticsRepo.SumRefuelingCost(ctx, p, repository.AggregateFilter{})
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	maintenance, err := uc.analyticsRepo.SumMaintenanceCost(ctx, p, repository.AggregateFilter{})
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	general, err := uc.analyticsRepo.SumGeneralExpenses(ctx, p)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	rev, err := uc.analyticsRepo.SumRevenue(ctx, p, repository.AggregateFilter{})
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return refueling.Add(maintenance).Add(general), rev, nil
}

// GetCostEvolution serie de los últimos seis meses calendario,
// independiente de cualquier rango del llamador.
func (uc *DashboardUseCase) GetCostEvolution(ctx context.Context) (*dto.CostEvolutionDTO, error) {
	now := time.Now()
	out := &dto.CostEvolutionDTO{
		Labels:      make([]string, 0, trailingMonths),
		CostData:    make([]decimal.Decimal, 0, trailingMonths),
		RevenueData: make([]decimal.Decimal, 0, trailingMonths),
	}
	for i := trailingMonths - 1; i >= 0; i-- {
		p, label := period.MonthsBack(now, i)
		cost, revenue, err := uc.monthTotals(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("dashboard: evolución de costos (%s): %w", label, err)
		}
		out.Labels = append(out.Labels, label)
		out.CostData = append(out.CostData, cost)
		out.RevenueData = append(out.RevenueData, revenue)
	}
	return out, nil
}

// GetRevenueVsExpenses misma ventana de seis meses, con la forma que
// espera el gráfico de barras comparativo.
func (uc *DashboardUseCase) GetRevenueVsExpenses(ctx context.Context) (*dto.RevenueVsExpensesDTO, error) {
	now := time.Now()
	out := &dto.RevenueVsExpensesDTO{
		Labels:      make([]string, 0, trailingMonths),
		RevenueData: make([]decimal.Decimal, 0, trailingMonths),
		ExpenseData: make([]decimal.Decimal, 0, trailingMonths),
	}
	for i := trailingMonths - 1; i >= 0; i-- {
		p, label := period.MonthsBack(now, i)
		cost, revenue, err := uc.monthTotals(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("dashboard: ingresos vs despesas (%s): %w", label, err)
		}
		out.Labels = append(out.Labels, label)
		out.RevenueData = append(out.RevenueData, revenue)
		out.ExpenseData = append(out.ExpenseData, cost)
	}
	return out, nil
}

// GetSpendingByCategory totales del período por categoría de gasto.
func (uc *DashboardUseCase) GetSpendingByCategory(ctx context.Context, startDate, endDate string) (*dto.SpendingByCategoryDTO, error) {
	p := period.Resolve(startDate, endDate)

	refueling, err := uc.analyticsRepo.SumRefuelingCost(ctx, p, repository.AggregateFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: gastos por categoría: %w", err)
	}
	maintenance, err := uc.analyticsRepo.SumMaintenanceCost(ctx, p, repository.AggregateFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: gastos por categoría: %w", err)
	}
	general, err := uc.analyticsRepo.SumGeneralExpenses(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("dashboard: gastos por categoría: %w", err)
	}

	return &dto.SpendingByCategoryDTO{
		Labels: []string{"Abastecimentos", "Manutenções", "Despesas Gerais"},
		Data:   []decimal.Decimal{refueling, maintenance, general},
	}, nil
}

// GetCostsPerVehicle costos de combustible y mantenimiento por vehículo
// activo, para el gráfico de barras apiladas.
func (uc *DashboardUseCase) GetCostsPerVehicle(ctx context.Context, startDate, endDate string) (*dto.CostsPerVehicleDTO, error) {
	p := period.Resolve(startDate, endDate)

	rows, err := uc.analyticsRepo.CostsPerVehicle(ctx, p, true)
	if err != nil {
		return nil, fmt.Errorf("dashboard: costos por vehículo: %w", err)
	}

	out := &dto.CostsPerVehicleDTO{
		Labels:          make([]string, 0, len(rows)),
		RefuelingData:   make([]decimal.Decimal, 0, len(rows)),
		MaintenanceData: make([]decimal.Decimal, 0, len(rows)),
	}
	for _, row := range rows {
		out.Labels = append(out.Labels, row.Plate)
		out.RefuelingData = append(out.RefuelingData, row.RefuelingCost)
		out.MaintenanceData = append(out.MaintenanceData, row.MaintenanceCost)
	}
	return out, nil
}

// GetTop5ExpensiveVehicles los cinco vehículos de mayor costo total en
// el período, descendente. Vehículos sin costo no participan.
func (uc *DashboardUseCase) GetTop5ExpensiveVehicles(ctx context.Context, startDate, endDate string) (*dto.TopVehiclesDTO, error) {
	p := period.Resolve(startDate, endDate)

	rows, err := uc.analyticsRepo.CostsPerVehicle(ctx, p, false)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top 5 vehículos: %w", err)
	}

	withCost := make([]repository.VehicleCostRow, 0, len(rows))
	for _, row := range rows {
		if row.TotalCost().IsPositive() {
			withCost = append(withCost, row)
		}
	}
	top := report.TopN(withCost, topVehicles, func(r repository.VehicleCostRow) decimal.Decimal {
		return r.TotalCost()
	})

	out := &dto.TopVehiclesDTO{
		Labels: make([]string, 0, len(top)),
		Data:   make([]decimal.Decimal, 0, len(top)),
	}
	for _, row := range top {
		out.Labels = append(out.Labels, row.Plate)
		out.Data = append(out.Data, row.TotalCost())
	}
	return out, nil
}
