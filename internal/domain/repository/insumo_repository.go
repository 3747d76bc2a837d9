package repository

import "github.com/quimlab/insumos-api/internal/domain/entity"

// InsumoRepository define el puerto de persistencia para Insumo (DIP).
// Los métodos Get devuelven (nil, nil) cuando el registro no existe.
type InsumoRepository interface {
	Create(insumo *entity.Insumo) error
	GetByID(id int64) (*entity.InsumoConProveedor, error)
	// GetForUpdate lee el insumo bloqueando su fila (SELECT ... FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Insumo, error)
	// List devuelve todos los insumos con proveedor resuelto, nombre ascendente.
	List() ([]*entity.InsumoConProveedor, error)
	// ListPorCategoria devuelve todos los insumos con proveedor resuelto,
	// ordenados por categoría ascendente y luego nombre ascendente.
	ListPorCategoria() ([]*entity.InsumoConProveedor, error)
	Update(insumo *entity.Insumo) error
	UpdateCantidad(id int64, cantidad int) error
	Delete(id int64) error
}
