package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/application/reportes"
)

// Tipos MIME de los reportes descargables.
const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ReporteHandler maneja las peticiones HTTP de reportes.
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// StockCritico godoc
// @Summary      Insumos por debajo del umbral de su categoría
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.InsumoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reportes/stock-critico [get]
func (h *ReporteHandler) StockCritico(c *fiber.Ctx) error {
	out, err := h.uc.StockCritico()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockCriticoPDF godoc
// @Summary      Reporte de stock crítico en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reportes/stock-critico/pdf [get]
func (h *ReporteHandler) StockCriticoPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.StockCriticoPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, mimePDF)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=stock_critico.pdf`)
	return c.Send(pdf)
}

// Consumo godoc
// @Summary      Total consumido por insumo (salidas)
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.ConsumoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reportes/consumo [get]
func (h *ReporteHandler) Consumo(c *fiber.Ctx) error {
	out, err := h.uc.Consumo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportarInsumos godoc
// @Summary      Exportar catálogo a xlsx (una hoja por categoría)
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /reportes/exportar-insumos [get]
func (h *ReporteHandler) ExportarInsumos(c *fiber.Ctx) error {
	// El libro se arma completo en memoria: si algo falla no se envía ningún
	// byte del archivo.
	libro, err := h.uc.ExportarInsumos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=reporte_insumos.xlsx`)
	return c.Send(libro)
}
