package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	pool *pgxpool.Pool
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(pool *pgxpool.Pool) *ProveedorRepo {
	return &ProveedorRepo{pool: pool}
}

// Create persiste un nuevo proveedor y asigna su ID.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO proveedores (nombre, contacto, telefono, email)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Nombre, p.Contacto, p.Telefono, p.Email,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, nombre, COALESCE(contacto, ''), COALESCE(telefono, ''), COALESCE(email, '')
		 FROM proveedores WHERE id = $1`, id,
	).Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// List devuelve todos los proveedores.
func (r *ProveedorRepo) List() ([]*entity.Proveedor, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, nombre, COALESCE(contacto, ''), COALESCE(telefono, ''), COALESCE(email, '')
		 FROM proveedores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.Email); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reemplaza los datos del proveedor.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE proveedores SET nombre = $2, contacto = $3, telefono = $4, email = $5 WHERE id = $1`,
		p.ID, p.Nombre, p.Contacto, p.Telefono, p.Email,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *ProveedorRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
