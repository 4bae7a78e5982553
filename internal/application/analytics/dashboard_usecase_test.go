package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/internal/application/analytics"
	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de agregación
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeAnalyticsRepo devuelve cifras fijas por categoría, sin importar el
// período consultado.
type fakeAnalyticsRepo struct {
	revenue     decimal.Decimal
	refueling   decimal.Decimal
	maintenance decimal.Decimal
	general     decimal.Decimal
	vehicles    int
	employees   int
	costRows    []repository.VehicleCostRow

	lastOnlyActive bool
}

func (f *fakeAnalyticsRepo) SumRevenue(context.Context, period.Period, repository.AggregateFilter) (decimal.Decimal, error) {
	return f.revenue, nil
}
func (f *fakeAnalyticsRepo) SumRefuelingCost(context.Context, period.Period, repository.AggregateFilter) (decimal.Decimal, error) {
	return f.refueling, nil
}
func (f *fakeAnalyticsRepo) SumMaintenanceCost(context.Context, period.Period, repository.AggregateFilter) (decimal.Decimal, error) {
	return f.maintenance, nil
}
func (f *fakeAnalyticsRepo) SumGeneralExpenses(context.Context, period.Period) (decimal.Decimal, error) {
	return f.general, nil
}
func (f *fakeAnalyticsRepo) CountVehiclesByStatus(_ context.Context, status string) (int, error) {
	if status == entity.VehicleStatusActive {
		return f.vehicles, nil
	}
	return 0, nil
}
func (f *fakeAnalyticsRepo) CountEmployeesByStatus(_ context.Context, status string) (int, error) {
	if status == entity.EmployeeStatusActive {
		return f.employees, nil
	}
	return 0, nil
}
func (f *fakeAnalyticsRepo) CostsPerVehicle(_ context.Context, _ period.Period, onlyActive bool) ([]repository.VehicleCostRow, error) {
	f.lastOnlyActive = onlyActive
	return f.costRows, nil
}
func (f *fakeAnalyticsRepo) RevenuesInPeriod(context.Context, period.Period) ([]repository.RevenueRow, error) {
	return nil, nil
}
func (f *fakeAnalyticsRepo) RefuelingsInPeriod(context.Context, period.Period) ([]repository.RefuelingRow, error) {
	return nil, nil
}
func (f *fakeAnalyticsRepo) MaintenancesInPeriod(context.Context, period.Period) ([]repository.MaintenanceRow, error) {
	return nil, nil
}
func (f *fakeAnalyticsRepo) GeneralExpensesInPeriod(context.Context, period.Period) ([]*entity.GeneralExpense, error) {
	return nil, nil
}

func costRow(plate, refueling, maintenance string) repository.VehicleCostRow {
	return repository.VehicleCostRow{
		Plate:           plate,
		RefuelingCost:   dec(refueling),
		MaintenanceCost: dec(maintenance),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetKpis
// ──────────────────────────────────────────────────────────────────────────────

func TestGetKpis_TarjetasFormateadasConDosDecimales(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		revenue:     dec("1000"),
		refueling:   dec("240.5"),
		maintenance: dec("100"),
		general:     dec("59.5"),
		vehicles:    7,
		employees:   4,
	}
	uc := analytics.NewDashboardUseCase(repo)

	kpis, err := uc.GetKpis(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)

	assert.Equal(t, 7, kpis.TotalVehicles)
	assert.Equal(t, 4, kpis.TotalEmployees)
	assert.Equal(t, "400.00", kpis.TotalMonthCost, "240.5 + 100 + 59.5")
	assert.Equal(t, "1000.00", kpis.TotalMonthRevenue)
}

// Sin movimiento en el período las tarjetas muestran "0.00", no vacío.
func TestGetKpis_SinMovimientoMuestraCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	kpis, err := uc.GetKpis(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "0.00", kpis.TotalMonthCost)
	assert.Equal(t, "0.00", kpis.TotalMonthRevenue)
}

// ──────────────────────────────────────────────────────────────────────────────
// Series mensuales
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCostEvolution_SeisMesesAscendentes(t *testing.T) {
	repo := &fakeAnalyticsRepo{refueling: dec("100"), revenue: dec("300")}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetCostEvolution(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Labels, 6)
	require.Len(t, out.CostData, 6)
	require.Len(t, out.RevenueData, 6)

	// El último label debe ser el mes en curso y el primero, cinco atrás
	now := time.Now()
	_, current := period.MonthsBack(now, 0)
	_, oldest := period.MonthsBack(now, 5)
	assert.Equal(t, current, out.Labels[5])
	assert.Equal(t, oldest, out.Labels[0])

	for i := 0; i < 6; i++ {
		assert.True(t, out.CostData[i].Equal(dec("100")))
		assert.True(t, out.RevenueData[i].Equal(dec("300")))
	}
}

func TestGetRevenueVsExpenses_MismaVentana(t *testing.T) {
	repo := &fakeAnalyticsRepo{maintenance: dec("50"), revenue: dec("80")}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetRevenueVsExpenses(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Labels, 6)
	for i := 0; i < 6; i++ {
		assert.True(t, out.ExpenseData[i].Equal(dec("50")))
		assert.True(t, out.RevenueData[i].Equal(dec("80")))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Por categoría y por vehículo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSpendingByCategory_EtiquetasYOrden(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		refueling:   dec("240"),
		maintenance: dec("360"),
		general:     dec("150"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSpendingByCategory(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Abastecimentos", "Manutenções", "Despesas Gerais"}, out.Labels)
	require.Len(t, out.Data, 3)
	assert.True(t, out.Data[0].Equal(dec("240")))
	assert.True(t, out.Data[1].Equal(dec("360")))
	assert.True(t, out.Data[2].Equal(dec("150")))
}

func TestGetCostsPerVehicle_SoloActivos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		costRows: []repository.VehicleCostRow{
			costRow("ABC1D23", "240", "360"),
			costRow("XYZ9K88", "0", "100"),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetCostsPerVehicle(context.Background(), "", "")
	require.NoError(t, err)

	assert.True(t, repo.lastOnlyActive, "el gráfico por vehículo solo cubre la flota activa")
	assert.Equal(t, []string{"ABC1D23", "XYZ9K88"}, out.Labels)
	assert.True(t, out.RefuelingData[0].Equal(dec("240")))
	assert.True(t, out.MaintenanceData[1].Equal(dec("100")))
}

// El top 5 ordena descendente por costo total, descarta los vehículos
// sin costo y trunca a cinco.
func TestGetTop5ExpensiveVehicles(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		costRows: []repository.VehicleCostRow{
			costRow("AAA0A00", "100", "0"),
			costRow("BBB0B00", "500", "400"),
			costRow("CCC0C00", "0", "0"), // sin costo: fuera
			costRow("DDD0D00", "300", "0"),
			costRow("EEE0E00", "200", "50"),
			costRow("FFF0F00", "150", "0"),
			costRow("GGG0G00", "120", "0"),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetTop5ExpensiveVehicles(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)

	assert.False(t, repo.lastOnlyActive, "el ranking considera toda la flota")
	assert.Equal(t, []string{"BBB0B00", "DDD0D00", "EEE0E00", "FFF0F00", "GGG0G00"}, out.Labels)
	assert.True(t, out.Data[0].Equal(dec("900")))
}
