package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/internal/application/report"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de construcción de filas
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func vehicle(id, plate, model string) *entity.Vehicle {
	return &entity.Vehicle{ID: id, Plate: plate, Model: model, Status: entity.VehicleStatusActive}
}

func refuelingRow(vehicleID, date, km, liters, totalCost string) repository.RefuelingRow {
	return repository.RefuelingRow{Refueling: entity.Refueling{
		VehicleID: vehicleID,
		Date:      date,
		VehicleKM: dec(km),
		Liters:    dec(liters),
		TotalCost: dec(totalCost),
	}}
}

func maintenanceRow(vehicleID, date, cost string) repository.MaintenanceRow {
	return repository.MaintenanceRow{Maintenance: entity.Maintenance{
		VehicleID: vehicleID,
		Date:      date,
		Cost:      dec(cost),
	}}
}

func revenueRow(date, amount string, vehicleID, employeeID *string) repository.RevenueRow {
	return repository.RevenueRow{Revenue: entity.Revenue{
		Date:       date,
		Amount:     dec(amount),
		VehicleID:  vehicleID,
		EmployeeID: employeeID,
	}}
}

func strptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// AnalyzeVehicles
// ──────────────────────────────────────────────────────────────────────────────

// Dos abastecimientos con odómetro 10000 y 10500: el KM rodado es la
// diferencia entre la última y la primera lectura, no la suma.
func TestAnalyzeVehicles_KMRodadoPorDiferenciaDeOdometro(t *testing.T) {
	vehicles := []*entity.Vehicle{vehicle("v1", "ABC1D23", "Sprinter")}
	refuelings := []repository.RefuelingRow{
		// Llegan en desorden a propósito: el análisis ordena por odómetro
		refuelingRow("v1", "2026-01-20", "10500", "50", "300"),
		refuelingRow("v1", "2026-01-05", "10000", "40", "240"),
	}

	analyses, fleetKM := report.AnalyzeVehicles(vehicles, nil, refuelings, nil)
	require.Len(t, analyses, 1)

	a := analyses[0]
	assert.Equal(t, "ABC1D23", a.Plate)
	assert.True(t, a.KMDriven.Equal(dec("500")), "KM rodado = 10500 − 10000")
	assert.True(t, fleetKM.Equal(dec("500")))

	// Economía = 500 km / 90 L
	expectedEconomy := dec("500").Div(dec("90"))
	assert.True(t, a.AvgKMPerLiter.Equal(expectedEconomy))

	// Costo/KM = 540 / 500
	assert.True(t, a.TotalCost.Equal(dec("540")))
	assert.True(t, a.CostPerKM.Equal(dec("540").Div(dec("500"))))
}

// Con un único abastecimiento no hay diferencia de odómetro válida:
// KM = 0 y la economía también queda en cero.
func TestAnalyzeVehicles_UnSoloAbastecimientoNoGeneraKM(t *testing.T) {
	vehicles := []*entity.Vehicle{vehicle("v1", "ABC1D23", "Sprinter")}
	refuelings := []repository.RefuelingRow{
		refuelingRow("v1", "2026-01-05", "10000", "40", "240"),
	}

	analyses, fleetKM := report.AnalyzeVehicles(vehicles, nil, refuelings, nil)
	require.Len(t, analyses, 1)
	assert.True(t, analyses[0].KMDriven.IsZero())
	assert.True(t, analyses[0].AvgKMPerLiter.IsZero())
	assert.True(t, analyses[0].CostPerKM.IsZero())
	assert.True(t, fleetKM.IsZero())
}

// Un vehículo sin costo ni ingreso en el período no aparece como fila
// en cero.
func TestAnalyzeVehicles_VehiculoSinActividadNoSeEmite(t *testing.T) {
	vehicles := []*entity.Vehicle{
		vehicle("v1", "ABC1D23", "Sprinter"),
		vehicle("v2", "XYZ9K88", "Daily"),
	}
	refuelings := []repository.RefuelingRow{
		refuelingRow("v1", "2026-01-05", "10000", "40", "240"),
	}

	analyses, _ := report.AnalyzeVehicles(vehicles, nil, refuelings, nil)
	require.Len(t, analyses, 1)
	assert.Equal(t, "ABC1D23", analyses[0].Plate)
}

func TestAnalyzeVehicles_BalanceEIngresosPorVehiculo(t *testing.T) {
	vehicles := []*entity.Vehicle{vehicle("v1", "ABC1D23", "Sprinter")}
	revenues := []repository.RevenueRow{
		revenueRow("2026-01-10", "1500", strptr("v1"), nil),
		revenueRow("2026-01-11", "500", strptr("v1"), nil),
		revenueRow("2026-01-12", "900", strptr("otro"), nil), // de otro vehículo
		revenueRow("2026-01-13", "100", nil, nil),            // sin vehículo
	}
	maintenances := []repository.MaintenanceRow{
		maintenanceRow("v1", "2026-01-15", "800"),
		maintenanceRow("v1", "2026-01-20", "200"),
	}

	analyses, _ := report.AnalyzeVehicles(vehicles, revenues, nil, maintenances)
	require.Len(t, analyses, 1)

	a := analyses[0]
	assert.True(t, a.TotalRevenue.Equal(dec("2000")))
	assert.True(t, a.TotalCost.Equal(dec("1000")))
	assert.True(t, a.Balance.Equal(dec("1000")))
	assert.Equal(t, 2, a.MaintenanceCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// AnalyzeEmployees
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyzeEmployees_TotalViajesYPromedio(t *testing.T) {
	employees := []*entity.Employee{
		{ID: "e1", Name: "Carlos Silva", Status: entity.EmployeeStatusActive},
		{ID: "e2", Name: "Ana Souza", Status: entity.EmployeeStatusActive},
	}
	revenues := []repository.RevenueRow{
		revenueRow("2026-01-10", "300", nil, strptr("e1")),
		revenueRow("2026-01-10", "200", nil, strptr("e1")),
		revenueRow("2026-01-12", "400", nil, strptr("e1")),
		revenueRow("2026-01-12", "999", nil, nil), // sin funcionario
	}

	analyses := report.AnalyzeEmployees(employees, revenues)

	// Ana no tiene viajes: no se emite
	require.Len(t, analyses, 1)
	a := analyses[0]
	assert.Equal(t, "Carlos Silva", a.Name)
	assert.Equal(t, 3, a.TripsCount)
	assert.True(t, a.TotalRevenue.Equal(dec("900")))
	assert.True(t, a.AvgRevenuePerTrip.Equal(dec("300")))
}

// El desglose diario agrupa por fecha y queda en orden cronológico,
// aunque las filas lleguen desordenadas.
func TestAnalyzeEmployees_DesgloseDiarioOrdenado(t *testing.T) {
	employees := []*entity.Employee{{ID: "e1", Name: "Carlos Silva"}}
	revenues := []repository.RevenueRow{
		revenueRow("2026-01-12", "400", nil, strptr("e1")),
		revenueRow("2026-01-10", "300", nil, strptr("e1")),
		revenueRow("2026-01-10", "200", nil, strptr("e1")),
	}

	analyses := report.AnalyzeEmployees(employees, revenues)
	require.Len(t, analyses, 1)

	daily := analyses[0].DailyRevenues
	require.Len(t, daily, 2)
	assert.Equal(t, "2026-01-10", daily[0].Date)
	assert.True(t, daily[0].Amount.Equal(dec("500")))
	assert.Equal(t, "2026-01-12", daily[1].Date)
	assert.True(t, daily[1].Amount.Equal(dec("400")))
}
