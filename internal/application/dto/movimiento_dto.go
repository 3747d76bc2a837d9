package dto

import "time"

// RegistrarMovimientoRequest body para POST /movimientos.
type RegistrarMovimientoRequest struct {
	InsumoID int64  `json:"insumoId" validate:"required"`
	Tipo     string `json:"tipo" validate:"required,oneof=entrada salida"`
	Cantidad int    `json:"cantidad" validate:"required,gt=0"`
	Motivo   string `json:"motivo"`
}

// MovimientoResponse salida de un movimiento con el nombre del insumo.
// El alias nombre_producto se conserva por compatibilidad con los clientes.
type MovimientoResponse struct {
	ID           int64     `json:"id"`
	InsumoID     int64     `json:"insumoId"`
	Tipo         string    `json:"tipo"`
	Cantidad     int       `json:"cantidad"`
	Motivo       string    `json:"motivo,omitempty"`
	Fecha        time.Time `json:"fecha"`
	NombreInsumo string    `json:"nombre_producto"`
}

// ConsumoResponse fila del reporte de consumo (total de salidas por insumo).
type ConsumoResponse struct {
	Insumo         string `json:"insumo"`
	TotalConsumido int64  `json:"total_consumido"`
}
