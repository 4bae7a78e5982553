package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/application/report"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

var testPeriod = period.Period{Start: "2026-01-01", End: "2026-01-03"}

func expense(date, amount string) *entity.GeneralExpense {
	return &entity.GeneralExpense{Date: date, Amount: dec(amount)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen financiero
// ──────────────────────────────────────────────────────────────────────────────

func TestAssemble_ResumenFinanciero(t *testing.T) {
	src := report.SourceRows{
		Revenues: []repository.RevenueRow{
			revenueRow("2026-01-01", "1000", nil, nil),
			revenueRow("2026-01-02", "500", nil, nil),
		},
		Refuelings: []repository.RefuelingRow{
			refuelingRow("v1", "2026-01-01", "10000", "40", "240"),
		},
		Maintenances: []repository.MaintenanceRow{
			maintenanceRow("v1", "2026-01-02", "360"),
		},
		GeneralExpenses: []*entity.GeneralExpense{expense("2026-01-03", "150")},
	}

	data := report.Assemble(report.CompanyInfo{Name: "Frota Teste"}, testPeriod, src, time.Now())

	fs := data.FinancialSummary
	assert.True(t, fs.TotalRevenue.Equal(dec("1500")))
	assert.True(t, fs.TotalExpenses.Equal(dec("750")), "240 + 360 + 150")
	assert.True(t, fs.NetResult.Equal(dec("750")))
	// Margen = 750 / 1500 = 0.5
	assert.True(t, fs.Margin.Equal(dec("0.5")))
}

// Sin ingresos el margen queda en cero, nunca en división por cero.
func TestAssemble_MargenCeroSinIngresos(t *testing.T) {
	src := report.SourceRows{
		Maintenances: []repository.MaintenanceRow{maintenanceRow("v1", "2026-01-02", "100")},
	}

	data := report.Assemble(report.CompanyInfo{}, testPeriod, src, time.Now())
	assert.True(t, data.FinancialSummary.Margin.IsZero())
	assert.True(t, data.FinancialSummary.NetResult.Equal(dec("-100")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Gráficos y conteos
// ──────────────────────────────────────────────────────────────────────────────

func TestAssemble_SeriesDeGraficos(t *testing.T) {
	src := report.SourceRows{
		Revenues: []repository.RevenueRow{revenueRow("2026-01-02", "1000", nil, nil)},
		Refuelings: []repository.RefuelingRow{
			refuelingRow("v1", "2026-01-01", "10000", "40", "240"),
		},
		Maintenances:    []repository.MaintenanceRow{maintenanceRow("v1", "2026-01-02", "360")},
		GeneralExpenses: []*entity.GeneralExpense{expense("2026-01-03", "150")},
	}

	data := report.Assemble(report.CompanyInfo{}, testPeriod, src, time.Now())

	// Torta: combustible, mantenimiento, gastos generales
	assert.True(t, data.Charts.Pie[0].Equal(dec("240")))
	assert.True(t, data.Charts.Pie[1].Equal(dec("360")))
	assert.True(t, data.Charts.Pie[2].Equal(dec("150")))

	// Barras: ingreso total vs despesa total
	assert.True(t, data.Charts.Bar[0].Equal(dec("1000")))
	assert.True(t, data.Charts.Bar[1].Equal(dec("750")))

	// Línea: un punto por cada día calendario, incluidos los días en cero
	require.Len(t, data.Charts.Line, 3)
	assert.Equal(t, "2026-01-01", data.Charts.Line[0].Date)
	assert.True(t, data.Charts.Line[0].Revenue.IsZero())
	assert.True(t, data.Charts.Line[0].Expenses.Equal(dec("240")))
	assert.True(t, data.Charts.Line[1].Revenue.Equal(dec("1000")))
	assert.True(t, data.Charts.Line[1].Expenses.Equal(dec("360")))
	assert.True(t, data.Charts.Line[2].Expenses.Equal(dec("150")))
}

func TestAssemble_ConteoDeRegistros(t *testing.T) {
	src := report.SourceRows{
		Vehicles:  []*entity.Vehicle{vehicle("v1", "ABC1D23", "Sprinter")},
		Employees: []*entity.Employee{{ID: "e1", Name: "Carlos"}},
		Revenues:  []repository.RevenueRow{revenueRow("2026-01-01", "10", nil, nil)},
	}

	data := report.Assemble(report.CompanyInfo{}, testPeriod, src, time.Now())
	assert.Equal(t, 1, data.Records.Vehicles)
	assert.Equal(t, 1, data.Records.Employees)
	assert.Equal(t, 1, data.Records.Revenues)
	assert.Equal(t, 0, data.Records.Maintenances)
}

// ──────────────────────────────────────────────────────────────────────────────
// Insights
// ──────────────────────────────────────────────────────────────────────────────

func TestAssemble_InsightsNilConRankingsVacios(t *testing.T) {
	data := report.Assemble(report.CompanyInfo{}, testPeriod, report.SourceRows{}, time.Now())

	assert.Nil(t, data.Insights.TopVehicleCost)
	assert.Nil(t, data.Insights.TopVehicleRevenue)
	assert.Nil(t, data.Insights.TopVehicleBalance)
	assert.Nil(t, data.Insights.TopEmployeeRevenue)
}

// En empate de categorías gana la primera en el orden combustible,
// mantenimiento, generales.
func TestAssemble_CategoriaTopDeGastoConEmpate(t *testing.T) {
	src := report.SourceRows{
		Refuelings:      []repository.RefuelingRow{refuelingRow("v1", "2026-01-01", "0", "1", "500")},
		Maintenances:    []repository.MaintenanceRow{maintenanceRow("v1", "2026-01-01", "500")},
		GeneralExpenses: []*entity.GeneralExpense{expense("2026-01-01", "100")},
	}

	data := report.Assemble(report.CompanyInfo{}, testPeriod, src, time.Now())
	assert.Equal(t, "Combustível", data.Insights.TopExpenseCategory.Label)
	assert.True(t, data.Insights.TopExpenseCategory.Value.Equal(dec("500")))
}

func TestAssemble_KPIsDeFlota(t *testing.T) {
	src := report.SourceRows{
		Vehicles: []*entity.Vehicle{vehicle("v1", "ABC1D23", "Sprinter")},
		Refuelings: []repository.RefuelingRow{
			refuelingRow("v1", "2026-01-01", "10000", "40", "200"),
			refuelingRow("v1", "2026-01-02", "10400", "40", "200"),
		},
		Revenues: []repository.RevenueRow{
			revenueRow("2026-01-01", "600", strptr("v1"), nil),
			revenueRow("2026-01-02", "400", strptr("v1"), nil),
		},
	}

	data := report.Assemble(report.CompanyInfo{}, testPeriod, src, time.Now())

	// Costo/KM de flota = despesa total / KM total = 400 / 400 = 1
	assert.True(t, data.KPIs.FleetAvgCostPerKM.Equal(dec("1")))
	assert.Equal(t, 2, data.KPIs.TotalTrips)
	assert.True(t, data.KPIs.AvgRevenuePerTrip.Equal(dec("500")))
}
