package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/repository"
	"github.com/quimlab/insumos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase verificación de credenciales: compara la contraseña contra el hash
// bcrypt y emite un JWT. Usuario desconocido y contraseña incorrecta
// devuelven el mismo error, sin filtrar el registro.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña y retorna token + usuario sin credencial.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UsuarioResponse{
			ID:       user.ID,
			Nombre:   user.Nombre,
			Username: user.Username,
			Rol:      user.Rol,
		},
	}, nil
}
