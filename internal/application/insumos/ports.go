package insumos

import (
	"context"

	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción (ver movimientos.TxRunner).
// El guard de borrado lo usa para que el conteo de movimientos y el DELETE
// formen una sola unidad lógica por insumo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		insumoRepo repository.InsumoRepository,
	) error) error
}
