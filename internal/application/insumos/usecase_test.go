package insumos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/application/insumos"
	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInsumoRepo struct {
	insumos map[int64]*entity.Insumo
	nextID  int64
}

func newFakeInsumoRepo(items ...*entity.Insumo) *fakeInsumoRepo {
	r := &fakeInsumoRepo{insumos: map[int64]*entity.Insumo{}}
	for _, i := range items {
		copia := *i
		r.insumos[i.ID] = &copia
		if i.ID > r.nextID {
			r.nextID = i.ID
		}
	}
	return r
}

func (r *fakeInsumoRepo) Create(insumo *entity.Insumo) error {
	r.nextID++
	insumo.ID = r.nextID
	copia := *insumo
	r.insumos[insumo.ID] = &copia
	return nil
}

func (r *fakeInsumoRepo) GetByID(id int64) (*entity.InsumoConProveedor, error) {
	i, ok := r.insumos[id]
	if !ok {
		return nil, nil
	}
	return &entity.InsumoConProveedor{Insumo: *i}, nil
}

func (r *fakeInsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) {
	i, ok := r.insumos[id]
	if !ok {
		return nil, nil
	}
	copia := *i
	return &copia, nil
}

func (r *fakeInsumoRepo) List() ([]*entity.InsumoConProveedor, error) {
	out := make([]*entity.InsumoConProveedor, 0, len(r.insumos))
	for _, i := range r.insumos {
		out = append(out, &entity.InsumoConProveedor{Insumo: *i})
	}
	return out, nil
}

func (r *fakeInsumoRepo) ListPorCategoria() ([]*entity.InsumoConProveedor, error) {
	return r.List()
}

func (r *fakeInsumoRepo) Update(insumo *entity.Insumo) error {
	copia := *insumo
	r.insumos[insumo.ID] = &copia
	return nil
}

func (r *fakeInsumoRepo) UpdateCantidad(id int64, cantidad int) error {
	i, ok := r.insumos[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.Cantidad = cantidad
	return nil
}

func (r *fakeInsumoRepo) Delete(id int64) error {
	delete(r.insumos, id)
	return nil
}

type fakeMovimientoRepo struct {
	movs []*entity.Movimiento
}

func (r *fakeMovimientoRepo) Create(mov *entity.Movimiento) error {
	mov.ID = int64(len(r.movs) + 1)
	mov.Fecha = time.Now()
	copia := *mov
	r.movs = append(r.movs, &copia)
	return nil
}

func (r *fakeMovimientoRepo) ListConInsumo() ([]*entity.MovimientoConInsumo, error) {
	return nil, nil
}

func (r *fakeMovimientoRepo) CountByInsumo(insumoID int64) (int64, error) {
	var n int64
	for _, m := range r.movs {
		if m.InsumoID == insumoID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovimientoRepo) TotalConsumoPorInsumo() ([]*entity.ConsumoInsumo, error) {
	return nil, nil
}

type fakeTxRunner struct {
	movRepo    *fakeMovimientoRepo
	insumoRepo *fakeInsumoRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	insumoRepo repository.InsumoRepository,
) error) error {
	antes := map[int64]*entity.Insumo{}
	for id, i := range tr.insumoRepo.insumos {
		copia := *i
		antes[id] = &copia
	}
	if err := fn(tr.movRepo, tr.insumoRepo); err != nil {
		tr.insumoRepo.insumos = antes
		return err
	}
	return nil
}

func newTestUseCase(items ...*entity.Insumo) (*insumos.UseCase, *fakeInsumoRepo, *fakeMovimientoRepo) {
	insumoRepo := newFakeInsumoRepo(items...)
	movRepo := &fakeMovimientoRepo{}
	tr := &fakeTxRunner{movRepo: movRepo, insumoRepo: insumoRepo}
	return insumos.NewUseCase(insumoRepo, tr), insumoRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — guard de borrado contra el ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_ConMovimientos_Rechaza(t *testing.T) {
	uc, insumoRepo, movRepo := newTestUseCase(&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 10})
	require.NoError(t, movRepo.Create(&entity.Movimiento{InsumoID: 1, Tipo: entity.MovimientoEntrada, Cantidad: 5}))

	err := uc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrInsumoConMovimientos)
	assert.Contains(t, insumoRepo.insumos, int64(1), "el insumo debe seguir existiendo tras el rechazo")
}

func TestDelete_SinMovimientos_Elimina(t *testing.T) {
	uc, insumoRepo, _ := newTestUseCase(&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 10})

	err := uc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.NotContains(t, insumoRepo.insumos, int64(1))
}

func TestDelete_MovimientosDeOtroInsumoNoBloquean(t *testing.T) {
	uc, insumoRepo, movRepo := newTestUseCase(
		&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 10},
		&entity.Insumo{ID: 2, Nombre: "Acetona", Cantidad: 3},
	)
	require.NoError(t, movRepo.Create(&entity.Movimiento{InsumoID: 2, Tipo: entity.MovimientoSalida, Cantidad: 1}))

	err := uc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.NotContains(t, insumoRepo.insumos, int64(1))
	assert.Contains(t, insumoRepo.insumos, int64(2))
}

func TestDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	err := uc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ValidaCamposObligatorios(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Create(dto.CreateInsumoRequest{Categoria: "material de vidrio"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(dto.CreateInsumoRequest{Nombre: "Matraz"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría vacía")
}

func TestCreate_AsignaIDYConservaCampos(t *testing.T) {
	uc, _, _ := newTestUseCase()

	provID := int64(7)
	resp, err := uc.Create(dto.CreateInsumoRequest{
		Nombre:      "Matraz aforado 100ml",
		Categoria:   "material de vidrio",
		Cantidad:    12,
		Unidad:      "unidad",
		Ubicacion:   "estante B2",
		Precio:      decimal.NewFromFloat(45.50),
		ProveedorID: &provID,
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Matraz aforado 100ml", resp.Nombre)
	assert.Equal(t, 12, resp.Cantidad)
	assert.True(t, resp.Precio.Equal(decimal.NewFromFloat(45.50)))
}

func TestGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc, _, _ := newTestUseCase()

	resp, err := uc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestUpdate_ReemplazaElRegistroCompleto(t *testing.T) {
	uc, insumoRepo, _ := newTestUseCase(&entity.Insumo{
		ID: 1, Nombre: "Etanol", Categoria: "reactivos organicos liquido", Cantidad: 10,
	})

	resp, err := uc.Update(1, dto.UpdateInsumoRequest{
		Nombre:    "Etanol 96%",
		Categoria: "reactivos organicos liquido",
		Cantidad:  25,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Etanol 96%", insumoRepo.insumos[1].Nombre)
	// PUT sobrescribe la cantidad sin pasar por el ledger.
	assert.Equal(t, 25, insumoRepo.insumos[1].Cantidad)
}

func TestUpdate_Inexistente_RetornaNil(t *testing.T) {
	uc, _, _ := newTestUseCase()

	resp, err := uc.Update(42, dto.UpdateInsumoRequest{Nombre: "X", Categoria: "otra"})
	require.NoError(t, err)
	assert.Nil(t, resp)
}
