// Package report contiene el pipeline analítico del reporte de
// desempeño de la flota: análisis por vehículo y por funcionario,
// rankings, ensamblado del objeto de reporte y el puerto de render PDF.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// VehicleAnalysis métricas de desempeño de un vehículo en el período.
type VehicleAnalysis struct {
	Plate            string
	Model            string
	KMDriven         decimal.Decimal
	AvgKMPerLiter    decimal.Decimal // 0 si no hay economía válida
	TotalCost        decimal.Decimal
	TotalRevenue     decimal.Decimal
	Balance          decimal.Decimal
	CostPerKM        decimal.Decimal
	RevenuePerKM     decimal.Decimal
	MaintenanceCount int
}

// DailyRevenue ingreso acumulado de un funcionario en un día.
type DailyRevenue struct {
	Date   string // yyyy-MM-dd
	Amount decimal.Decimal
}

// EmployeeAnalysis métricas de desempeño de un funcionario en el período.
type EmployeeAnalysis struct {
	Name              string
	TotalRevenue      decimal.Decimal
	TripsCount        int
	AvgRevenuePerTrip decimal.Decimal
	DailyRevenues     []DailyRevenue
}

// AnalyzeVehicles recorre el roster completo y deriva las métricas de
// cada vehículo a partir de las filas ya traídas del período.
//
// Reglas:
//   - KM rodado = última lectura − primera lectura del odómetro,
//     ordenando los abastecimientos por odómetro; exige ≥2 registros,
//     si no vale 0.
//   - Economía (KM/L) solo si KM rodado > 0 y litros > 0; si no, 0.
//   - Costo/KM e ingreso/KM solo si KM rodado > 0.
//   - Un vehículo entra al resultado únicamente con costo > 0 o
//     ingreso > 0; los vehículos sin actividad no aparecen como filas
//     en cero.
//
// Devuelve además el total de KM de la flota (solo de los vehículos
// emitidos) para el costo/KM a nivel de flota.
func AnalyzeVehicles(
	vehicles []*entity.Vehicle,
	revenues []repository.RevenueRow,
	refuelings []repository.RefuelingRow,
	maintenances []repository.MaintenanceRow,
) ([]VehicleAnalysis, decimal.Decimal) {
	analyses := make([]VehicleAnalysis, 0, len(vehicles))
	fleetKM := decimal.Zero

	for _, vehicle := range vehicles {
		var vRefuelings []repository.RefuelingRow
		for _, r := range refuelings {
			if r.VehicleID == vehicle.ID {
				vRefuelings = append(vRefuelings, r)
			}
		}
		sort.SliceStable(vRefuelings, func(i, j int) bool {
			return vRefuelings[i].VehicleKM.LessThan(vRefuelings[j].VehicleKM)
		})

		kmDriven := decimal.Zero
		if len(vRefuelings) > 1 {
			kmDriven = vRefuelings[len(vRefuelings)-1].VehicleKM.Sub(vRefuelings[0].VehicleKM)
		}

		totalLiters := decimal.Zero
		refuelingCost := decimal.Zero
		for _, r := range vRefuelings {
			totalLiters = totalLiters.Add(r.Liters)
			refuelingCost = refuelingCost.Add(r.TotalCost)
		}

		economy := decimal.Zero
		if kmDriven.IsPositive() && totalLiters.IsPositive() {
			economy = kmDriven.Div(totalLiters)
		}

		maintenanceCost := decimal.Zero
		maintenanceCount := 0
		for _, m := range maintenances {
			if m.VehicleID == vehicle.ID {
				maintenanceCost = maintenanceCost.Add(m.Cost)
				maintenanceCount++
			}
		}

		totalRevenue := decimal.Zero
		for _, r := range revenues {
			if r.VehicleID != nil && *r.VehicleID == vehicle.ID {
				totalRevenue = totalRevenue.Add(r.Amount)
			}
		}

		totalCost := refuelingCost.Add(maintenanceCost)
		if !totalCost.IsPositive() && !totalRevenue.IsPositive() {
			continue // sin actividad en el período
		}

		costPerKM := decimal.Zero
		revenuePerKM := decimal.Zero
		if kmDriven.IsPositive() {
			costPerKM = totalCost.Div(kmDriven)
			revenuePerKM = totalRevenue.Div(kmDriven)
		}

		fleetKM = fleetKM.Add(kmDriven)
		analyses = append(analyses, VehicleAnalysis{
			Plate:            vehicle.Plate,
			Model:            vehicle.Model,
			KMDriven:         kmDriven,
			AvgKMPerLiter:    economy,
			TotalCost:        totalCost,
			TotalRevenue:     totalRevenue,
			Balance:          totalRevenue.Sub(totalCost),
			CostPerKM:        costPerKM,
			RevenuePerKM:     revenuePerKM,
			MaintenanceCount: maintenanceCount,
		})
	}

	return analyses, fleetKM
}

// AnalyzeEmployees deriva las métricas de cada funcionario: ingreso
// total, cantidad de viajes (= filas de ingreso) e ingreso medio por
// viaje, más el desglose diario ordenado cronológicamente. Solo se
// emiten funcionarios con al menos un viaje en el período, lo que de
// paso garantiza el divisor > 0 del promedio.
func AnalyzeEmployees(
	employees []*entity.Employee,
	revenues []repository.RevenueRow,
) []EmployeeAnalysis {
	analyses := make([]EmployeeAnalysis, 0, len(employees))

	for _, employee := range employees {
		totalRevenue := decimal.Zero
		trips := 0
		daily := map[string]decimal.Decimal{}
		for _, r := range revenues {
			if r.EmployeeID == nil || *r.EmployeeID != employee.ID {
				continue
			}
			totalRevenue = totalRevenue.Add(r.Amount)
			trips++
			daily[r.Date] = daily[r.Date].Add(r.Amount)
		}
		if trips == 0 {
			continue
		}

		dailyList := make([]DailyRevenue, 0, len(daily))
		for date, amount := range daily {
			dailyList = append(dailyList, DailyRevenue{Date: date, Amount: amount})
		}
		// yyyy-MM-dd ordena cronológicamente como string
		sort.Slice(dailyList, func(i, j int) bool {
			return dailyList[i].Date < dailyList[j].Date
		})

		analyses = append(analyses, EmployeeAnalysis{
			Name:              employee.Name,
			TotalRevenue:      totalRevenue,
			TripsCount:        trips,
			AvgRevenuePerTrip: totalRevenue.Div(decimal.NewFromInt(int64(trips))),
			DailyRevenues:     dailyList,
		})
	}

	return analyses
}
