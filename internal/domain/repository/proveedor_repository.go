package repository

import "github.com/quimlab/insumos-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id int64) (*entity.Proveedor, error)
	List() ([]*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	Delete(id int64) error
}
