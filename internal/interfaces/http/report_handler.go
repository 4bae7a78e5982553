package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/application/report"
	"github.com/scala-gestao/frota-api/internal/domain"
	"github.com/scala-gestao/frota-api/pkg/logger"
)

// ReportHandler genera el reporte analítico completo de la flota en PDF.
type ReportHandler struct {
	uc  *report.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// GetFullReport godoc
// @Summary      Reporte completo de desempeño de la flota (PDF)
// @Description  Requiere rango de fechas explícito; sin ambos extremos responde 400.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        startDate  query  string  true  "yyyy-MM-dd"
// @Param        endDate    query  string  true  "yyyy-MM-dd"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/full [get]
func (h *ReportHandler) GetFullReport(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	pdfBytes, filename, err := h.uc.Generate(c.Context(), startDate, endDate)
	if err != nil {
		if err == domain.ErrIncompletePeriod {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INCOMPLETE_PERIOD", Message: "startDate y endDate son requeridos"})
		}
		h.log.Error().Err(err).
			Str("start_date", startDate).
			Str("end_date", endDate).
			Msg("fallo generando reporte completo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el reporte"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
