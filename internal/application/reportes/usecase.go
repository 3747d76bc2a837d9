package reportes

import (
	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
	"github.com/quimlab/insumos-api/internal/domain/stock"
)

// UseCase reportes de inventario: stock crítico (JSON y PDF), consumo por
// insumo y exportación xlsx del catálogo. Todas las lecturas van directas al
// store; no hay capa de caché.
type UseCase struct {
	insumoRepo repository.InsumoRepository
	movRepo    repository.MovimientoRepository
	workbook   WorkbookGenerator
	pdf        PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoRepository,
	workbook WorkbookGenerator,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{insumoRepo: insumoRepo, movRepo: movRepo, workbook: workbook, pdf: pdf}
}

// StockCritico devuelve los insumos por debajo del umbral de su categoría.
func (uc *UseCase) StockCritico() ([]dto.InsumoResponse, error) {
	criticos, err := uc.stockCritico()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsumoResponse, 0, len(criticos))
	for _, i := range criticos {
		items = append(items, dto.InsumoResponse{
			ID:            i.ID,
			Nombre:        i.Nombre,
			Categoria:     i.Categoria,
			Cantidad:      i.Cantidad,
			Unidad:        i.Unidad,
			Ubicacion:     i.Ubicacion,
			Precio:        i.Precio,
			Observaciones: i.Observaciones,
			ProveedorID:   i.ProveedorID,
			Proveedor:     i.Proveedor,
		})
	}
	return items, nil
}

// StockCriticoPDF genera la rendición imprimible del reporte de stock crítico.
func (uc *UseCase) StockCriticoPDF() ([]byte, error) {
	criticos, err := uc.stockCritico()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerarStockCritico(criticos)
}

func (uc *UseCase) stockCritico() ([]*entity.InsumoConProveedor, error) {
	list, err := uc.insumoRepo.List()
	if err != nil {
		return nil, err
	}
	var criticos []*entity.InsumoConProveedor
	for _, i := range list {
		if stock.EsCritico(i.Categoria, i.Cantidad) {
			criticos = append(criticos, i)
		}
	}
	return criticos, nil
}

// Consumo devuelve el total de salidas por insumo, mayor consumo primero.
func (uc *UseCase) Consumo() ([]dto.ConsumoResponse, error) {
	list, err := uc.movRepo.TotalConsumoPorInsumo()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsumoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ConsumoResponse{
			Insumo:         c.Insumo,
			TotalConsumido: c.TotalConsumido,
		})
	}
	return items, nil
}

// ExportarInsumos produce el libro xlsx del catálogo agrupado por categoría.
// Si la consulta falla no se genera ningún byte del libro.
func (uc *UseCase) ExportarInsumos() ([]byte, error) {
	list, err := uc.insumoRepo.ListPorCategoria()
	if err != nil {
		return nil, err
	}
	return uc.workbook.GenerarInsumos(list)
}
