package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste un nuevo usuario y asigna su ID. Username repetido ->
// domain.ErrDuplicate.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO usuarios (nombre, usuario, password_hash, rol)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Nombre, u.Username, u.PasswordHash, u.Rol,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	return r.get(`WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por su login.
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	return r.get(`WHERE usuario = $1`, username)
}

func (r *UsuarioRepo) get(where string, arg any) (*entity.Usuario, error) {
	query := `SELECT id, nombre, usuario, password_hash, rol FROM usuarios ` + where
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nombre, &u.Username, &u.PasswordHash, &u.Rol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, nombre, usuario, password_hash, rol FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Username, &u.PasswordHash, &u.Rol); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update reemplaza los datos del usuario (hash incluido).
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE usuarios SET nombre = $2, usuario = $3, password_hash = $4, rol = $5 WHERE id = $1`,
		u.ID, u.Nombre, u.Username, u.PasswordHash, u.Rol,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
