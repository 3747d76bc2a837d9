package movimientos_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/application/movimientos"
	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInsumoRepo struct {
	insumos map[int64]*entity.Insumo
}

func newFakeInsumoRepo(items ...*entity.Insumo) *fakeInsumoRepo {
	r := &fakeInsumoRepo{insumos: map[int64]*entity.Insumo{}}
	for _, i := range items {
		copia := *i
		r.insumos[i.ID] = &copia
	}
	return r
}

func (r *fakeInsumoRepo) Create(insumo *entity.Insumo) error {
	insumo.ID = int64(len(r.insumos) + 1)
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
	movs   []*entity.Movimiento
	nextID int64
}

func (r *fakeMovimientoRepo) Create(mov *entity.Movimiento) error {
	r.nextID++
	mov.ID = r.nextID
	mov.Fecha = time.Now()
	copia := *mov
	r.movs = append(r.movs, &copia)
	return nil
}

func (r *fakeMovimientoRepo) ListConInsumo() ([]*entity.MovimientoConInsumo, error) {
	out := make([]*entity.MovimientoConInsumo, 0, len(r.movs))
	for i := len(r.movs) - 1; i >= 0; i-- {
		out = append(out, &entity.MovimientoConInsumo{Movimiento: *r.movs[i]})
	}
	return out, nil
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

// fakeTxRunner ejecuta fn directamente sobre los fakes. Si fn retorna error,
// revierte el estado de ambos repos a la instantánea previa, emulando el
// rollback de la transacción real.
type fakeTxRunner struct {
	movRepo    *fakeMovimientoRepo
	insumoRepo *fakeInsumoRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	insumoRepo repository.InsumoRepository,
) error) error {
	movsAntes := make([]*entity.Movimiento, len(tr.movRepo.movs))
	copy(movsAntes, tr.movRepo.movs)
	idAntes := tr.movRepo.nextID
	insumosAntes := map[int64]*entity.Insumo{}
	for id, i := range tr.insumoRepo.insumos {
		copia := *i
		insumosAntes[id] = &copia
	}

	if err := fn(tr.movRepo, tr.insumoRepo); err != nil {
		tr.movRepo.movs = movsAntes
		tr.movRepo.nextID = idAntes
		tr.insumoRepo.insumos = insumosAntes
		return err
	}
	return nil
}

func newTestUseCase(items ...*entity.Insumo) (*movimientos.UseCase, *fakeInsumoRepo, *fakeMovimientoRepo) {
	insumoRepo := newFakeInsumoRepo(items...)
	movRepo := &fakeMovimientoRepo{}
	tr := &fakeTxRunner{movRepo: movRepo, insumoRepo: insumoRepo}
	return movimientos.NewUseCase(tr, movRepo), insumoRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaSumaCantidad(t *testing.T) {
	uc, insumoRepo, movRepo := newTestUseCase(&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 10})

	err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		InsumoID: 1, Tipo: entity.MovimientoEntrada, Cantidad: 5, Motivo: "compra",
	})
	require.NoError(t, err)

	assert.Equal(t, 15, insumoRepo.insumos[1].Cantidad)
	require.Len(t, movRepo.movs, 1)
	assert.Equal(t, entity.MovimientoEntrada, movRepo.movs[0].Tipo)
	assert.Equal(t, 5, movRepo.movs[0].Cantidad)
}

func TestRegistrar_SalidaRestaCantidad(t *testing.T) {
	uc, insumoRepo, _ := newTestUseCase(&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 10})

	err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		InsumoID: 1, Tipo: entity.MovimientoSalida, Cantidad: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, insumoRepo.insumos[1].Cantidad)
}

func TestRegistrar_SalidaPuedeDejarNegativo(t *testing.T) {
	// No hay piso: una salida mayor al stock disponible queda registrada y
	// la cantidad resultante es negativa.
	uc, insumoRepo, movRepo := newTestUseCase(&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 10})

	err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		InsumoID: 1, Tipo: entity.MovimientoSalida, Cantidad: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, -10, insumoRepo.insumos[1].Cantidad)
	assert.Len(t, movRepo.movs, 1)
}

func TestRegistrar_CantidadReflejaSumaDelLedger(t *testing.T) {
	// La cantidad final equivale a la inicial más la suma con signo de todos
	// los movimientos aplicados.
	uc, insumoRepo, _ := newTestUseCase(&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 0})

	pasos := []struct {
		tipo     string
		cantidad int
	}{
		{entity.MovimientoEntrada, 50},
		{entity.MovimientoSalida, 12},
		{entity.MovimientoEntrada, 7},
		{entity.MovimientoSalida, 30},
	}
	esperado := 0
	for _, p := range pasos {
		err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
			InsumoID: 1, Tipo: p.tipo, Cantidad: p.cantidad,
		})
		require.NoError(t, err)
		if p.tipo == entity.MovimientoEntrada {
			esperado += p.cantidad
		} else {
			esperado -= p.cantidad
		}
	}

	assert.Equal(t, esperado, insumoRepo.insumos[1].Cantidad)
}

func TestRegistrar_InsumoInexistente_NoDejaMovimientoHuerfano(t *testing.T) {
	uc, _, movRepo := newTestUseCase()

	err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		InsumoID: 99, Tipo: entity.MovimientoEntrada, Cantidad: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movRepo.movs, "un registro fallido no debe dejar movimientos en el ledger")
}

func TestRegistrar_TipoInvalido(t *testing.T) {
	uc, insumoRepo, movRepo := newTestUseCase(&entity.Insumo{ID: 1, Cantidad: 10})

	err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		InsumoID: 1, Tipo: "ajuste", Cantidad: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, insumoRepo.insumos[1].Cantidad)
	assert.Empty(t, movRepo.movs)
}

func TestRegistrar_CantidadNoPositiva(t *testing.T) {
	uc, _, _ := newTestUseCase(&entity.Insumo{ID: 1, Cantidad: 10})

	for _, cantidad := range []int{0, -5} {
		err := uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
			InsumoID: 1, Tipo: entity.MovimientoEntrada, Cantidad: cantidad,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", cantidad)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_DevuelveMovimientosMasRecientesPrimero(t *testing.T) {
	uc, _, _ := newTestUseCase(&entity.Insumo{ID: 1, Nombre: "Etanol", Cantidad: 10})

	require.NoError(t, uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		InsumoID: 1, Tipo: entity.MovimientoEntrada, Cantidad: 5, Motivo: "compra",
	}))
	require.NoError(t, uc.Registrar(context.Background(), dto.RegistrarMovimientoRequest{
		InsumoID: 1, Tipo: entity.MovimientoSalida, Cantidad: 2, Motivo: "práctica",
	}))

	items, err := uc.Listar()
	require.NoError(t, err)
	require.Len(t, items, 2)
	// El fake reproduce el orden fecha descendente del repo real.
	assert.Equal(t, entity.MovimientoSalida, items[0].Tipo)
	assert.Equal(t, entity.MovimientoEntrada, items[1].Tipo)
}
