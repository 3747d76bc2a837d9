package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// Movimiento es una anotación inmutable del ledger: registra una entrada o
// salida contra exactamente un insumo. No existen operaciones de
// actualización ni borrado; el ledger es solo-añadir.
type Movimiento struct {
	ID       int64
	InsumoID int64
	Tipo     string // entrada | salida
	Cantidad int    // siempre positiva; el signo lo da el tipo
	Motivo   string
	Fecha    time.Time // asignada por la base de datos al confirmar
}

// MovimientoConInsumo vista de lectura con el nombre del insumo resuelto.
type MovimientoConInsumo struct {
	Movimiento
	NombreInsumo string
}

// ConsumoInsumo total consumido (tipo salida) por insumo, para el reporte de consumo.
type ConsumoInsumo struct {
	Insumo         string
	TotalConsumido int64
}
