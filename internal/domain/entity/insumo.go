package entity

import "github.com/shopspring/decimal"

// Insumo representa un consumible de laboratorio rastreable (reactivo,
// material de vidrio, instrumento, etc.).
//
// Cantidad siempre refleja la suma neta de los movimientos confirmados del
// insumo (entrada suma, salida resta); solo cambia vía el ledger de
// movimientos o por una edición completa del registro (PUT), que no se
// reconcilia contra el ledger.
type Insumo struct {
	ID            int64
	Nombre        string
	Categoria     string // etiqueta libre; ver stock.Clasificar
	Cantidad      int
	Unidad        string
	Ubicacion     string
	Precio        decimal.Decimal
	Observaciones string
	ProveedorID   *int64
}

// InsumoConProveedor vista de lectura con el nombre del proveedor resuelto.
// Proveedor queda vacío cuando el insumo no referencia ninguno.
type InsumoConProveedor struct {
	Insumo
	Proveedor string
}
