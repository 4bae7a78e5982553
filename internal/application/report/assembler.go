package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// CompanyInfo membrete de la empresa para la portada del reporte.
type CompanyInfo struct {
	Name        string
	CNPJ        string
	AddressLine string
	CityLine    string
	Phone       string
}

// FinancialSummary resumen financiero general del período.
type FinancialSummary struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetResult     decimal.Decimal
	Margin        decimal.Decimal // NetResult / TotalRevenue; 0 si no hay ingresos
}

// KPIs indicadores a nivel de flota.
type KPIs struct {
	FleetAvgCostPerKM decimal.Decimal
	TotalTrips        int
	AvgRevenuePerTrip decimal.Decimal
}

// RecordSummary volumen de registros por tipo.
type RecordSummary struct {
	Revenues        int
	Refuelings      int
	Maintenances    int
	GeneralExpenses int
	Vehicles        int
	Employees       int
}

// ExpenseCategory una categoría de gasto con su total del período.
type ExpenseCategory struct {
	Label string
	Value decimal.Decimal
}

// Insights destacados individuales para el panel de resumen. Los
// punteros son nil cuando el ranking correspondiente quedó vacío.
type Insights struct {
	TopVehicleCost     *VehicleAnalysis
	TopVehicleRevenue  *VehicleAnalysis
	TopVehicleBalance  *VehicleAnalysis
	TopEmployeeRevenue *EmployeeAnalysis
	TopExpenseCategory ExpenseCategory
}

// DailyEntry punto de la serie diaria de ingresos y despesas.
type DailyEntry struct {
	Date     string // yyyy-MM-dd
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
}

// ChartData series listas para graficar: torta de despesas por
// categoría, barras ingreso vs despesa y línea de evolución diaria.
type ChartData struct {
	Pie  [3]decimal.Decimal // combustible, mantenimiento, gastos generales
	Bar  [2]decimal.Decimal // ingreso total, despesa total
	Line []DailyEntry
}

// SourceRows filas del período ya traídas de la base, insumo del
// ensamblado. El ensamblador no hace I/O.
type SourceRows struct {
	Vehicles        []*entity.Vehicle
	Employees       []*entity.Employee
	Revenues        []repository.RevenueRow
	Refuelings      []repository.RefuelingRow
	Maintenances    []repository.MaintenanceRow
	GeneralExpenses []*entity.GeneralExpense
}

// Data objeto desnormalizado con todo lo que el renderer necesita.
type Data struct {
	Company     CompanyInfo
	Period      period.Period
	GeneratedAt time.Time

	FinancialSummary FinancialSummary
	KPIs             KPIs
	Records          RecordSummary
	Insights         Insights
	Charts           ChartData
	TopLists         Rankings

	VehicleAnalysis  []VehicleAnalysis
	EmployeeAnalysis []EmployeeAnalysis

	// Listas detalladas para las tablas de anexo
	Revenues        []repository.RevenueRow
	Refuelings      []repository.RefuelingRow
	Maintenances    []repository.MaintenanceRow
	GeneralExpenses []*entity.GeneralExpense
}

// Etiquetas de las categorías de gasto, en el idioma del documento.
var expenseCategoryLabels = [3]string{"Combustível", "Manutenção", "Despesas Gerais"}

// Assemble combina agregados, análisis, rankings y desgloses en el
// objeto final del reporte. Transformación pura: sin I/O, sin reloj
// propio (la marca de generación entra como argumento).
func Assemble(company CompanyInfo, p period.Period, src SourceRows, generatedAt time.Time) *Data {
	totalRevenue := decimal.Zero
	for _, r := range src.Revenues {
		totalRevenue = totalRevenue.Add(r.Amount)
	}
	refuelingCost := decimal.Zero
	for _, r := range src.Refuelings {
		refuelingCost = refuelingCost.Add(r.TotalCost)
	}
	maintenanceCost := decimal.Zero
	for _, m := range src.Maintenances {
		maintenanceCost = maintenanceCost.Add(m.Cost)
	}
	generalCost := decimal.Zero
	for _, g := range src.GeneralExpenses {
		generalCost = generalCost.Add(g.Amount)
	}
	totalExpenses := refuelingCost.Add(maintenanceCost).Add(generalCost)
	netResult := totalRevenue.Sub(totalExpenses)

	margin := decimal.Zero
	if totalRevenue.IsPositive() {
		margin = netResult.Div(totalRevenue)
	}

	vehicleAnalysis, fleetKM := AnalyzeVehicles(src.Vehicles, src.Revenues, src.Refuelings, src.Maintenances)
	employeeAnalysis := AnalyzeEmployees(src.Employees, src.Revenues)
	rankings := Rank(vehicleAnalysis, employeeAnalysis)

	fleetAvgCostPerKM := decimal.Zero
	if fleetKM.IsPositive() {
		fleetAvgCostPerKM = totalExpenses.Div(fleetKM)
	}

	totalTrips := len(src.Revenues)
	avgRevenuePerTrip := decimal.Zero
	if totalTrips > 0 {
		avgRevenuePerTrip = totalRevenue.Div(decimal.NewFromInt(int64(totalTrips)))
	}

	return &Data{
		Company:     company,
		Period:      p,
		GeneratedAt: generatedAt,
		FinancialSummary: FinancialSummary{
			TotalRevenue:  totalRevenue,
			TotalExpenses: totalExpenses,
			NetResult:     netResult,
			Margin:        margin,
		},
		KPIs: KPIs{
			FleetAvgCostPerKM: fleetAvgCostPerKM,
			TotalTrips:        totalTrips,
			AvgRevenuePerTrip: avgRevenuePerTrip,
		},
		Records: RecordSummary{
			Revenues:        len(src.Revenues),
			Refuelings:      len(src.Refuelings),
			Maintenances:    len(src.Maintenances),
			GeneralExpenses: len(src.GeneralExpenses),
			Vehicles:        len(src.Vehicles),
			Employees:       len(src.Employees),
		},
		Insights: Insights{
			TopVehicleCost:     firstVehicle(rankings.VehiclesCost),
			TopVehicleRevenue:  firstVehicle(rankings.VehiclesRevenue),
			TopVehicleBalance:  firstVehicle(rankings.VehiclesBalance),
			TopEmployeeRevenue: firstEmployee(rankings.EmployeesRevenue),
			TopExpenseCategory: topExpenseCategory(refuelingCost, maintenanceCost, generalCost),
		},
		Charts: ChartData{
			Pie:  [3]decimal.Decimal{refuelingCost, maintenanceCost, generalCost},
			Bar:  [2]decimal.Decimal{totalRevenue, totalExpenses},
			Line: dailyBreakdown(p, src),
		},
		TopLists:         rankings,
		VehicleAnalysis:  vehicleAnalysis,
		EmployeeAnalysis: employeeAnalysis,
		Revenues:         src.Revenues,
		Refuelings:       src.Refuelings,
		Maintenances:     src.Maintenances,
		GeneralExpenses:  src.GeneralExpenses,
	}
}

// dailyBreakdown acumula ingreso y despesa por cada día calendario del
// período, incluyendo los días sin movimiento (puntos en cero).
func dailyBreakdown(p period.Period, src SourceRows) []DailyEntry {
	var entries []DailyEntry
	for _, day := range p.Days() {
		revenue := decimal.Zero
		for _, r := range src.Revenues {
			if r.Date == day {
				revenue = revenue.Add(r.Amount)
			}
		}
		expenses := decimal.Zero
		for _, r := range src.Refuelings {
			if r.Date == day {
				expenses = expenses.Add(r.TotalCost)
			}
		}
		for _, m := range src.Maintenances {
			if m.Date == day {
				expenses = expenses.Add(m.Cost)
			}
		}
		for _, g := range src.GeneralExpenses {
			if g.Date == day {
				expenses = expenses.Add(g.Amount)
			}
		}
		entries = append(entries, DailyEntry{Date: day, Revenue: revenue, Expenses: expenses})
	}
	return entries
}

// topExpenseCategory devuelve la categoría de mayor gasto. En empate
// gana la primera en el orden combustible, mantenimiento, generales.
func topExpenseCategory(refueling, maintenance, general decimal.Decimal) ExpenseCategory {
	categories := []ExpenseCategory{
		{Label: expenseCategoryLabels[0], Value: refueling},
		{Label: expenseCategoryLabels[1], Value: maintenance},
		{Label: expenseCategoryLabels[2], Value: general},
	}
	top := categories[0]
	for _, c := range categories[1:] {
		if c.Value.GreaterThan(top.Value) {
			top = c
		}
	}
	return top
}

func firstVehicle(list []VehicleAnalysis) *VehicleAnalysis {
	if len(list) == 0 {
		return nil
	}
	v := list[0]
	return &v
}

func firstEmployee(list []EmployeeAnalysis) *EmployeeAnalysis {
	if len(list) == 0 {
		return nil
	}
	e := list[0]
	return &e
}
