package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

// InsumoRepo implementación del puerto InsumoRepository sobre PostgreSQL
// (usable con pool o tx).
type InsumoRepo struct {
	q Querier
}

// NewInsumoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInsumoRepository(q Querier) *InsumoRepo {
	return &InsumoRepo{q: q}
}

// Create persiste un nuevo insumo y asigna su ID.
func (r *InsumoRepo) Create(insumo *entity.Insumo) error {
	query := `
		INSERT INTO productos (nombre, categoria, cantidad, unidad, ubicacion, precio, observaciones, proveedor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		insumo.Nombre, insumo.Categoria, insumo.Cantidad, insumo.Unidad,
		insumo.Ubicacion, insumo.Precio, insumo.Observaciones, insumo.ProveedorID,
	).Scan(&insumo.ID)
	if err != nil {
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo con el nombre del proveedor resuelto.
func (r *InsumoRepo) GetByID(id int64) (*entity.InsumoConProveedor, error) {
	query := `
		SELECT p.id, p.nombre, p.categoria, p.cantidad, p.unidad, p.ubicacion,
		       p.precio, COALESCE(p.observaciones, ''), p.proveedor_id,
		       COALESCE(pr.nombre, '')
		FROM productos p
		LEFT JOIN proveedores pr ON p.proveedor_id = pr.id
		WHERE p.id = $1`
	var i entity.InsumoConProveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Nombre, &i.Categoria, &i.Cantidad, &i.Unidad, &i.Ubicacion,
		&i.Precio, &i.Observaciones, &i.ProveedorID, &i.Proveedor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return &i, nil
}

// GetForUpdate lee el insumo bloqueando su fila para el resto de la
// transacción (SELECT ... FOR UPDATE).
func (r *InsumoRepo) GetForUpdate(id int64) (*entity.Insumo, error) {
	query := `
		SELECT id, nombre, categoria, cantidad, unidad, ubicacion, precio,
		       COALESCE(observaciones, ''), proveedor_id
		FROM productos WHERE id = $1 FOR UPDATE`
	var i entity.Insumo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Nombre, &i.Categoria, &i.Cantidad, &i.Unidad, &i.Ubicacion,
		&i.Precio, &i.Observaciones, &i.ProveedorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo for update: %w", err)
	}
	return &i, nil
}

// List devuelve todos los insumos con proveedor resuelto, nombre ascendente.
func (r *InsumoRepo) List() ([]*entity.InsumoConProveedor, error) {
	return r.list(`ORDER BY p.nombre ASC`)
}

// ListPorCategoria devuelve todos los insumos ordenados por categoría y nombre
// (orden que consume el exportador para agrupar hojas).
func (r *InsumoRepo) ListPorCategoria() ([]*entity.InsumoConProveedor, error) {
	return r.list(`ORDER BY p.categoria ASC, p.nombre ASC`)
}

func (r *InsumoRepo) list(orderBy string) ([]*entity.InsumoConProveedor, error) {
	query := `
		SELECT p.id, p.nombre, p.categoria, p.cantidad, p.unidad, p.ubicacion,
		       p.precio, COALESCE(p.observaciones, ''), p.proveedor_id,
		       COALESCE(pr.nombre, '')
		FROM productos p
		LEFT JOIN proveedores pr ON p.proveedor_id = pr.id ` + orderBy
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.InsumoConProveedor
	for rows.Next() {
		var i entity.InsumoConProveedor
		if err := rows.Scan(
			&i.ID, &i.Nombre, &i.Categoria, &i.Cantidad, &i.Unidad, &i.Ubicacion,
			&i.Precio, &i.Observaciones, &i.ProveedorID, &i.Proveedor,
		); err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update reemplaza el registro completo del insumo, cantidad incluida.
func (r *InsumoRepo) Update(insumo *entity.Insumo) error {
	query := `
		UPDATE productos
		SET nombre = $2, categoria = $3, cantidad = $4, unidad = $5,
		    ubicacion = $6, precio = $7, observaciones = $8, proveedor_id = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		insumo.ID, insumo.Nombre, insumo.Categoria, insumo.Cantidad, insumo.Unidad,
		insumo.Ubicacion, insumo.Precio, insumo.Observaciones, insumo.ProveedorID,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}
	return nil
}

// UpdateCantidad fija la cantidad en mano del insumo (usado por el ledger
// dentro de la transacción que inserta el movimiento).
func (r *InsumoRepo) UpdateCantidad(id int64, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad = $2 WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("update cantidad: %w", err)
	}
	return nil
}

// Delete elimina un insumo por ID.
func (r *InsumoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insumo: %w", err)
	}
	return nil
}
