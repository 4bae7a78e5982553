package report

import (
	"context"
	"fmt"
	"time"

	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// UseCase genera el reporte completo de desempeño de la flota en PDF.
//
// Flujo secuencial por petición: búsqueda centralizada de datos (en
// paralelo, son lecturas independientes) → análisis → ensamblado →
// render. Sin caché ni reintentos: un fallo en cualquier etapa aborta
// el reporte entero.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	vehicleRepo   repository.VehicleRepository
	employeeRepo  repository.EmployeeRepository
	renderer      Renderer
	company       CompanyInfo
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	analyticsRepo repository.AnalyticsRepository,
	vehicleRepo repository.VehicleRepository,
	employeeRepo repository.EmployeeRepository,
	renderer Renderer,
	company CompanyInfo,
) *UseCase {
	return &UseCase{
		analyticsRepo: analyticsRepo,
		vehicleRepo:   vehicleRepo,
		employeeRepo:  employeeRepo,
		renderer:      renderer,
		company:       company,
	}
}

// Generate valida el rango, trae las seis colecciones del período,
// ensambla y renderiza. Devuelve los bytes del PDF y el nombre de
// archivo sugerido.
//
// El rango explícito es obligatorio: sin ambos extremos se rechaza con
// domain.ErrIncompletePeriod antes de tocar la base de datos.
func (uc *UseCase) Generate(ctx context.Context, startDate, endDate string) ([]byte, string, error) {
	if !period.Complete(startDate, endDate) {
		return nil, "", domain.ErrIncompletePeriod
	}
	p := period.Period{Start: startDate, End: endDate}

	src, err := uc.fetchSources(ctx, p)
	if err != nil {
		return nil, "", err
	}

	data := Assemble(uc.company, p, *src, time.Now())

	pdfBytes, err := uc.renderer.Render(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("report: render: %w", err)
	}

	filename := fmt.Sprintf("relatorio-completo-frota-%s-a-%s.pdf", p.Start, p.End)
	return pdfBytes, filename, nil
}

// fetchSources lanza las seis lecturas en paralelo y espera todas.
// Cualquier error individual aborta el reporte completo.
func (uc *UseCase) fetchSources(ctx context.Context, p period.Period) (*SourceRows, error) {
	type revenuesResult struct {
		rows []repository.RevenueRow
		err  error
	}
	type refuelingsResult struct {
		rows []repository.RefuelingRow
		err  error
	}
	type maintenancesResult struct {
		rows []repository.MaintenanceRow
		err  error
	}
	type expensesResult struct {
		rows []*entity.GeneralExpense
		err  error
	}
	type vehiclesResult struct {
		rows []*entity.Vehicle
		err  error
	}
	type employeesResult struct {
		rows []*entity.Employee
		err  error
	}

	revenuesCh := make(chan revenuesResult, 1)
	refuelingsCh := make(chan refuelingsResult, 1)
	maintenancesCh := make(chan maintenancesResult, 1)
	expensesCh := make(chan expensesResult, 1)
	vehiclesCh := make(chan vehiclesResult, 1)
	employeesCh := make(chan employeesResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.RevenuesInPeriod(ctx, p)
		revenuesCh <- revenuesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.RefuelingsInPeriod(ctx, p)
		refuelingsCh <- refuelingsResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.MaintenancesInPeriod(ctx, p)
		maintenancesCh <- maintenancesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GeneralExpensesInPeriod(ctx, p)
		expensesCh <- expensesResult{rows, err}
	}()
	go func() {
		rows, err := uc.vehicleRepo.List("")
		vehiclesCh <- vehiclesResult{rows, err}
	}()
	go func() {
		rows, err := uc.employeeRepo.List("")
		employeesCh <- employeesResult{rows, err}
	}()

	revenues := <-revenuesCh
	refuelings := <-refuelingsCh
	maintenances := <-maintenancesCh
	expenses := <-expensesCh
	vehicles := <-vehiclesCh
	employees := <-employeesCh

	if revenues.err != nil {
		return nil, fmt.Errorf("report: ingresos del período: %w", revenues.err)
	}
	if refuelings.err != nil {
		return nil, fmt.Errorf("report: abastecimientos del período: %w", refuelings.err)
	}
	if maintenances.err != nil {
		return nil, fmt.Errorf("report: mantenimientos del período: %w", maintenances.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("report: gastos generales del período: %w", expenses.err)
	}
	if vehicles.err != nil {
		return nil, fmt.Errorf("report: roster de vehículos: %w", vehicles.err)
	}
	if employees.err != nil {
		return nil, fmt.Errorf("report: roster de funcionarios: %w", employees.err)
	}

	return &SourceRows{
		Vehicles:        vehicles.rows,
		Employees:       employees.rows,
		Revenues:        revenues.rows,
		Refuelings:      refuelings.rows,
		Maintenances:    maintenances.rows,
		GeneralExpenses: expenses.rows,
	}, nil
}
