package repository

import "github.com/quimlab/insumos-api/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para el ledger de
// movimientos. El ledger es solo-añadir: no hay Update ni Delete.
type MovimientoRepository interface {
	// Create inserta el movimiento y asigna ID y Fecha desde la base de datos.
	Create(mov *entity.Movimiento) error
	// ListConInsumo devuelve todos los movimientos con el nombre del insumo
	// resuelto, fecha descendente (más reciente primero).
	ListConInsumo() ([]*entity.MovimientoConInsumo, error)
	// CountByInsumo cuenta los movimientos que referencian al insumo
	// (consulta del guard de borrado).
	CountByInsumo(insumoID int64) (int64, error)
	// TotalConsumoPorInsumo suma las salidas por insumo, total descendente.
	TotalConsumoPorInsumo() ([]*entity.ConsumoInsumo, error)
}
