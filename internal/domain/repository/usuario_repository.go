package repository

import "github.com/quimlab/insumos-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	Delete(id int64) error
}
