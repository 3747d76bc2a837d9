package movimientos

import (
	"context"

	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a
// ella; Commit si fn retorna nil, Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		insumoRepo repository.InsumoRepository,
	) error) error
}
