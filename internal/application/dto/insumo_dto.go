package dto

import "github.com/shopspring/decimal"

// CreateInsumoRequest entrada para crear un insumo.
type CreateInsumoRequest struct {
	Nombre        string          `json:"nombre" validate:"required,min=1,max=200"`
	Categoria     string          `json:"categoria" validate:"required"`
	Cantidad      int             `json:"cantidad"`
	Unidad        string          `json:"unidad"`
	Ubicacion     string          `json:"ubicacion"`
	ProveedorID   *int64          `json:"proveedorId"`
	Precio        decimal.Decimal `json:"precio"`
	Observaciones string          `json:"observaciones"`
}

// UpdateInsumoRequest entrada para la edición completa de un insumo (PUT).
// Reemplaza todos los campos, incluida la cantidad: esta vía no se reconcilia
// contra el ledger de movimientos.
type UpdateInsumoRequest struct {
	Nombre        string          `json:"nombre"`
	Categoria     string          `json:"categoria"`
	Cantidad      int             `json:"cantidad"`
	Unidad        string          `json:"unidad"`
	Ubicacion     string          `json:"ubicacion"`
	ProveedorID   *int64          `json:"proveedorId"`
	Precio        decimal.Decimal `json:"precio"`
	Observaciones string          `json:"observaciones"`
}

// InsumoResponse salida de un insumo con el nombre del proveedor resuelto.
type InsumoResponse struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	Categoria     string          `json:"categoria"`
	Cantidad      int             `json:"cantidad"`
	Unidad        string          `json:"unidad"`
	Ubicacion     string          `json:"ubicacion"`
	Precio        decimal.Decimal `json:"precio"`
	Observaciones string          `json:"observaciones,omitempty"`
	ProveedorID   *int64          `json:"proveedorId,omitempty"`
	Proveedor     string          `json:"proveedor,omitempty"`
}
