package usuarios

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// UseCase CRUD de usuarios. La credencial se guarda como hash bcrypt y las
// respuestas nunca la incluyen.
type UseCase struct {
	repo repository.UsuarioRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UsuarioRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve todos los usuarios sin credencial.
func (uc *UseCase) List() ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario; (nil, nil) si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuarioResponse(u), nil
}

// Create crea un usuario: hashea la contraseña con bcrypt y persiste.
// Rol vacío se registra como empleado. Username repetido -> ErrDuplicate.
func (uc *UseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Nombre == "" || in.Username == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolEmpleado
	}
	u := &entity.Usuario{
		Nombre:       in.Nombre,
		Username:     in.Username,
		PasswordHash: string(hash),
		Rol:          rol,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Update reemplaza los datos del usuario. Contraseña vacía conserva el hash
// actual; no vacía se vuelve a hashear.
func (uc *UseCase) Update(id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	hash := existing.PasswordHash
	if in.Contrasena != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	rol := in.Rol
	if rol == "" {
		rol = existing.Rol
	}
	u := &entity.Usuario{
		ID:           id,
		Nombre:       in.Nombre,
		Username:     in.Username,
		PasswordHash: hash,
		Rol:          rol,
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Delete elimina un usuario por ID.
func (uc *UseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Username: u.Username,
		Rol:      u.Rol,
	}
}
