package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/application/fleet"
	"github.com/scala-gestao/frota-api/internal/domain"
)

// RevenueHandler maneja las peticiones HTTP para ingresos (protegido).
type RevenueHandler struct {
	uc *fleet.RevenueUseCase
}

// NewRevenueHandler construye el handler.
func NewRevenueHandler(uc *fleet.RevenueUseCase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ingreso
// @Tags         revenues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RevenueRequest  true  "Datos del ingreso"
// @Success      201   {object}  dto.RevenueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/revenues [post]
func (h *RevenueHandler) Create(c *fiber.Ctx) error {
	var in dto.RevenueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha yyyy-MM-dd, descripción y monto positivo son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo o funcionario vinculado no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingreso por ID
// @Tags         revenues
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ingreso"
// @Success      200  {object}  dto.RevenueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/revenues/{id} [get]
func (h *RevenueHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingreso no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ingresos
// @Tags         revenues
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RevenueResponse
// @Router       /api/revenues [get]
func (h *RevenueHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ingreso
// @Tags         revenues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingreso"
// @Param        body  body  dto.RevenueRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RevenueResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/revenues/{id} [put]
func (h *RevenueHandler) Update(c *fiber.Ctx) error {
	var in dto.RevenueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha yyyy-MM-dd, descripción y monto positivo son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo o funcionario vinculado no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingreso no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ingreso
// @Tags         revenues
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ingreso"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/revenues/{id} [delete]
func (h *RevenueHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "ingreso eliminado"})
}
