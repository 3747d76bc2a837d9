package insumos

import (
	"context"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// UseCase casos de uso CRUD del catálogo de insumos, incluido el guard de
// borrado: un insumo referenciado por el ledger no se puede eliminar.
type UseCase struct {
	repo     repository.InsumoRepository
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InsumoRepository, txRunner TxRunner) *UseCase {
	return &UseCase{repo: repo, txRunner: txRunner}
}

// List devuelve todos los insumos con proveedor resuelto, nombre ascendente.
func (uc *UseCase) List() ([]dto.InsumoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsumoResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInsumoResponse(i))
	}
	return items, nil
}

// GetByID obtiene un insumo por ID; (nil, nil) si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.InsumoResponse, error) {
	insumo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, nil
	}
	return toInsumoResponse(insumo), nil
}

// Create crea un insumo con la cantidad inicial declarada.
func (uc *UseCase) Create(in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	if in.Nombre == "" || in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	insumo := &entity.Insumo{
		Nombre:        in.Nombre,
		Categoria:     in.Categoria,
		Cantidad:      in.Cantidad,
		Unidad:        in.Unidad,
		Ubicacion:     in.Ubicacion,
		Precio:        in.Precio,
		Observaciones: in.Observaciones,
		ProveedorID:   in.ProveedorID,
	}
	if err := uc.repo.Create(insumo); err != nil {
		return nil, err
	}
	return toInsumoResponse(&entity.InsumoConProveedor{Insumo: *insumo}), nil
}

// Update reemplaza el registro completo, cantidad incluida. Esta vía no pasa
// por el ledger: editar la cantidad aquí puede desalinearla de la suma de
// movimientos.
func (uc *UseCase) Update(id int64, in dto.UpdateInsumoRequest) (*dto.InsumoResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	insumo := &entity.Insumo{
		ID:            id,
		Nombre:        in.Nombre,
		Categoria:     in.Categoria,
		Cantidad:      in.Cantidad,
		Unidad:        in.Unidad,
		Ubicacion:     in.Ubicacion,
		Precio:        in.Precio,
		Observaciones: in.Observaciones,
		ProveedorID:   in.ProveedorID,
	}
	if err := uc.repo.Update(insumo); err != nil {
		return nil, err
	}
	return toInsumoResponse(&entity.InsumoConProveedor{Insumo: *insumo}), nil
}

// Delete elimina un insumo si el ledger no lo referencia. El conteo y el
// borrado corren en la misma transacción, así un movimiento insertado en
// medio no puede colarse entre la verificación y el DELETE.
// Retorna ErrInsumoConMovimientos cuando hay movimientos registrados y
// ErrNotFound cuando el insumo no existe.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		insumoRepo repository.InsumoRepository,
	) error {
		insumo, err := insumoRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if insumo == nil {
			return domain.ErrNotFound
		}
		total, err := movRepo.CountByInsumo(id)
		if err != nil {
			return err
		}
		if total > 0 {
			return domain.ErrInsumoConMovimientos
		}
		return insumoRepo.Delete(id)
	})
}

func toInsumoResponse(i *entity.InsumoConProveedor) *dto.InsumoResponse {
	if i == nil {
		return nil
	}
	return &dto.InsumoResponse{
		ID:            i.ID,
		Nombre:        i.Nombre,
		Categoria:     i.Categoria,
		Cantidad:      i.Cantidad,
		Unidad:        i.Unidad,
		Ubicacion:     i.Ubicacion,
		Precio:        i.Precio,
		Observaciones: i.Observaciones,
		ProveedorID:   i.ProveedorID,
		Proveedor:     i.Proveedor,
	}
}
