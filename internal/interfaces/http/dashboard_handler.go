package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scala-gestao/frota-api/internal/application/analytics"
	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/pkg/logger"
)

// DashboardHandler expone las métricas agregadas del panel de control.
// Todos los endpoints aceptan ?startDate=yyyy-MM-dd&endDate=yyyy-MM-dd;
// cuando falta alguno de los dos, el caso de uso ignora el filtro.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// fail registra el detalle interno y responde con un mensaje genérico;
// el texto del error de infraestructura nunca llega al cliente.
func (h *DashboardHandler) fail(c *fiber.Ctx, err error, metric string) error {
	h.log.Error().Err(err).Str("metric", metric).Msg("fallo consultando métricas del panel")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "no se pudieron consultar las métricas del panel",
	})
}

// GetKpis godoc
// @Summary      KPIs financieros del período
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "yyyy-MM-dd"
// @Param        endDate    query  string  false  "yyyy-MM-dd"
// @Success      200  {object}  dto.KpisDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) GetKpis(c *fiber.Ctx) error {
	out, err := h.uc.GetKpis(c.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return h.fail(c, err, "kpis")
	}
	return c.JSON(out)
}

// GetCostEvolution godoc
// @Summary      Evolución mensual del costo total (últimos 6 meses)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CostEvolutionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/cost-evolution [get]
func (h *DashboardHandler) GetCostEvolution(c *fiber.Ctx) error {
	out, err := h.uc.GetCostEvolution(c.Context())
	if err != nil {
		return h.fail(c, err, "cost-evolution")
	}
	return c.JSON(out)
}

// GetRevenueVsExpenses godoc
// @Summary      Ingresos vs gastos mensuales (últimos 6 meses)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RevenueVsExpensesDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/revenue-vs-expenses [get]
func (h *DashboardHandler) GetRevenueVsExpenses(c *fiber.Ctx) error {
	out, err := h.uc.GetRevenueVsExpenses(c.Context())
	if err != nil {
		return h.fail(c, err, "revenue-vs-expenses")
	}
	return c.JSON(out)
}

// GetSpendingByCategory godoc
// @Summary      Distribución del gasto por categoría
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "yyyy-MM-dd"
// @Param        endDate    query  string  false  "yyyy-MM-dd"
// @Success      200  {object}  dto.SpendingByCategoryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/spending-by-category [get]
func (h *DashboardHandler) GetSpendingByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetSpendingByCategory(c.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return h.fail(c, err, "spending-by-category")
	}
	return c.JSON(out)
}

// GetCostsPerVehicle godoc
// @Summary      Costos por vehículo activo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "yyyy-MM-dd"
// @Param        endDate    query  string  false  "yyyy-MM-dd"
// @Success      200  {object}  dto.CostsPerVehicleDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/costs-per-vehicle [get]
func (h *DashboardHandler) GetCostsPerVehicle(c *fiber.Ctx) error {
	out, err := h.uc.GetCostsPerVehicle(c.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return h.fail(c, err, "costs-per-vehicle")
	}
	return c.JSON(out)
}

// GetTop5ExpensiveVehicles godoc
// @Summary      Cinco vehículos con mayor costo total
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "yyyy-MM-dd"
// @Param        endDate    query  string  false  "yyyy-MM-dd"
// @Success      200  {object}  dto.TopVehiclesDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/top5-vehicles [get]
func (h *DashboardHandler) GetTop5ExpensiveVehicles(c *fiber.Ctx) error {
	out, err := h.uc.GetTop5ExpensiveVehicles(c.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return h.fail(c, err, "top5-vehicles")
	}
	return c.JSON(out)
}
