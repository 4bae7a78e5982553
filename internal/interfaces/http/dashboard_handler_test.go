package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scala-gestao/frota-api/internal/application/analytics"
	"github.com/scala-gestao/frota-api/internal/application/period"
	"github.com/scala-gestao/frota-api/internal/domain/entity"
	"github.com/scala-gestao/frota-api/internal/domain/repository"
	apphttp "github.com/scala-gestao/frota-api/internal/interfaces/http"
	"github.com/scala-gestao/frota-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// brokenAnalyticsRepo falla en toda lectura con el mismo error de
// infraestructura, para verificar qué llega (y qué no) al cliente.
type brokenAnalyticsRepo struct {
	err error
}

func (r *brokenAnalyticsRepo) SumRevenue(context.Context, period.Period, repository.AggregateFilter) (decimal.Decimal, error) {
	return decimal.Zero, r.err
}
func (r *brokenAnalyticsRepo) SumRefuelingCost(context.Context, period.Period, repository.AggregateFilter) (decimal.Decimal, error) {
	return decimal.Zero, r.err
}
func (r *brokenAnalyticsRepo) SumMaintenanceCost(context.Context, period.Period, repository.AggregateFilter) (decimal.Decimal, error) {
	return decimal.Zero, r.err
}
func (r *brokenAnalyticsRepo) SumGeneralExpenses(context.Context, period.Period) (decimal.Decimal, error) {
	return decimal.Zero, r.err
}
func (r *brokenAnalyticsRepo) CountVehiclesByStatus(context.Context, string) (int, error) {
	return 0, r.err
}
func (r *brokenAnalyticsRepo) CountEmployeesByStatus(context.Context, string) (int, error) {
	return 0, r.err
}
func (r *brokenAnalyticsRepo) CostsPerVehicle(context.Context, period.Period, bool) ([]repository.VehicleCostRow, error) {
	return nil, r.err
}
func (r *brokenAnalyticsRepo) RevenuesInPeriod(context.Context, period.Period) ([]repository.RevenueRow, error) {
	return nil, r.err
}
func (r *brokenAnalyticsRepo) RefuelingsInPeriod(context.Context, period.Period) ([]repository.RefuelingRow, error) {
	return nil, r.err
}
func (r *brokenAnalyticsRepo) MaintenancesInPeriod(context.Context, period.Period) ([]repository.MaintenanceRow, error) {
	return nil, r.err
}
func (r *brokenAnalyticsRepo) GeneralExpensesInPeriod(context.Context, period.Period) ([]*entity.GeneralExpense, error) {
	return nil, r.err
}

func buildDashboardApp(repo repository.AnalyticsRepository) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewDashboardHandler(
		analytics.NewDashboardUseCase(repo),
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	app.Get("/api/dashboard/kpis", handler.GetKpis)
	app.Get("/api/dashboard/top5-vehicles", handler.GetTop5ExpensiveVehicles)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de infraestructura
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo de base responde 500 con mensaje genérico; el detalle del
// error interno se queda en el log, nunca en el cuerpo.
func TestDashboard_ErrorDeBaseNoExponeDetalleInterno(t *testing.T) {
	internal := errors.New(`pgx: connect failed: dial tcp 10.0.0.7:5432: connection refused`)
	app := buildDashboardApp(&brokenAnalyticsRepo{err: internal})

	for _, route := range []string{"/api/dashboard/kpis", "/api/dashboard/top5-vehicles"} {
		req := httptest.NewRequest(http.MethodGet, route, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err, route)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, route)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var errResp struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, "INTERNAL", errResp.Code, route)
		assert.Equal(t, "no se pudieron consultar las métricas del panel", errResp.Message, route)
		assert.NotContains(t, string(body), "pgx", route)
		assert.NotContains(t, string(body), "connection refused", route)
	}
}
