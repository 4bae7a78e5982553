package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scala-gestao/frota-api/internal/application/dto"
	"github.com/scala-gestao/frota-api/internal/application/fleet"
	"github.com/scala-gestao/frota-api/internal/domain"
)

// RefuelingHandler maneja las peticiones HTTP para abastecimientos (protegido).
type RefuelingHandler struct {
	uc *fleet.RefuelingUseCase
}

// NewRefuelingHandler construye el handler.
func NewRefuelingHandler(uc *fleet.RefuelingUseCase) *RefuelingHandler {
	return &RefuelingHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar abastecimiento
// @Tags         refuelings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefuelingRequest  true  "Datos del abastecimiento"
// @Success      201   {object}  dto.RefuelingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/refuelings [post]
func (h *RefuelingHandler) Create(c *fiber.Ctx) error {
	var in dto.RefuelingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha yyyy-MM-dd, litros positivos, vehículo y funcionario son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener abastecimiento por ID
// @Tags         refuelings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del abastecimiento"
// @Success      200  {object}  dto.RefuelingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/refuelings/{id} [get]
func (h *RefuelingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "abastecimiento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar abastecimientos
// @Tags         refuelings
// @Security     Bearer
// @Produce      json
// @Param        vehicle_id  query  string  false  "Filtrar por vehículo"
// @Success      200  {array}  dto.RefuelingResponse
// @Router       /api/refuelings [get]
func (h *RefuelingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("vehicle_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar abastecimiento
// @Tags         refuelings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del abastecimiento"
// @Param        body  body  dto.RefuelingRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RefuelingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/refuelings/{id} [put]
func (h *RefuelingHandler) Update(c *fiber.Ctx) error {
	var in dto.RefuelingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha yyyy-MM-dd, litros positivos, vehículo y funcionario son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vehículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "abastecimiento no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar abastecimiento
// @Tags         refuelings
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del abastecimiento"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/refuelings/{id} [delete]
func (h *RefuelingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "abastecimiento eliminado"})
}
