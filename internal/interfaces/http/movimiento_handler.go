package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/application/movimientos"
	"github.com/quimlab/insumos-api/internal/domain"
)

// MovimientoHandler maneja las peticiones HTTP del ledger de movimientos.
type MovimientoHandler struct {
	uc *movimientos.UseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *movimientos.UseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movimientos
// @Produce      json
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Registrar godoc
// @Summary      Registrar movimiento (entrada o salida)
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "insumoId, tipo, cantidad, motivo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Registrar(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "VALIDATION", Message: "tipo debe ser entrada o salida y cantidad positiva"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: "insumo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Movimiento registrado correctamente"})
}
