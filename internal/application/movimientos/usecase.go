package movimientos

import (
	"context"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// UseCase registra movimientos del ledger de forma transaccional y los lista.
//
// Registrar inserta el movimiento y ajusta la cantidad del insumo como una
// sola unidad: ambos pasos confirman juntos o ninguno queda aplicado. La fila
// del insumo se bloquea (SELECT ... FOR UPDATE) mientras dura la transacción,
// de modo que dos registros concurrentes sobre el mismo insumo se serializan.
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.MovimientoRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movRepo repository.MovimientoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo}
}

// Registrar valida la entrada y aplica el movimiento.
// Reglas: tipo ∈ {entrada, salida}, cantidad > 0, el insumo debe existir.
// No se impone piso: una salida puede dejar la cantidad en negativo.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistrarMovimientoRequest) error {
	if in.Tipo != entity.MovimientoEntrada && in.Tipo != entity.MovimientoSalida {
		return domain.ErrInvalidInput
	}
	if in.Cantidad <= 0 || in.InsumoID <= 0 {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		insumoRepo repository.InsumoRepository,
	) error {
		insumo, err := insumoRepo.GetForUpdate(in.InsumoID)
		if err != nil {
			return err
		}
		if insumo == nil {
			return domain.ErrNotFound
		}

		mov := &entity.Movimiento{
			InsumoID: in.InsumoID,
			Tipo:     in.Tipo,
			Cantidad: in.Cantidad,
			Motivo:   in.Motivo,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		delta := in.Cantidad
		if in.Tipo == entity.MovimientoSalida {
			delta = -delta
		}
		return insumoRepo.UpdateCantidad(insumo.ID, insumo.Cantidad+delta)
	})
}

// Listar devuelve todos los movimientos con el nombre del insumo, más
// recientes primero.
func (uc *UseCase) Listar() ([]dto.MovimientoResponse, error) {
	list, err := uc.movRepo.ListConInsumo()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovimientoResponse{
			ID:           m.ID,
			InsumoID:     m.InsumoID,
			Tipo:         m.Tipo,
			Cantidad:     m.Cantidad,
			Motivo:       m.Motivo,
			Fecha:        m.Fecha,
			NombreInsumo: m.NombreInsumo,
		})
	}
	return items, nil
}
