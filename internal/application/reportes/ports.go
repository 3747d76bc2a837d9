package reportes

import "github.com/quimlab/insumos-api/internal/domain/entity"

// WorkbookGenerator serializa el snapshot de insumos a un libro xlsx
// agrupado por categoría. El libro completo se construye en memoria.
type WorkbookGenerator interface {
	GenerarInsumos(insumos []*entity.InsumoConProveedor) ([]byte, error)
}

// PDFGenerator produce la rendición imprimible del reporte de stock crítico.
type PDFGenerator interface {
	GenerarStockCritico(insumos []*entity.InsumoConProveedor) ([]byte, error)
}
