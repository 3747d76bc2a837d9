package proveedores

import (
	"github.com/quimlab/insumos-api/internal/application/dto"
	"github.com/quimlab/insumos-api/internal/domain"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

// UseCase CRUD de proveedores (datos de referencia, sin reglas propias).
type UseCase struct {
	repo repository.ProveedorRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProveedorRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve todos los proveedores.
func (uc *UseCase) List() ([]dto.ProveedorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return items, nil
}

// GetByID obtiene un proveedor; (nil, nil) si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProveedorResponse(p), nil
}

// Create crea un proveedor.
func (uc *UseCase) Create(in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Proveedor{
		Nombre:   in.Nombre,
		Contacto: in.Contacto,
		Telefono: in.Telefono,
		Email:    in.Email,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// Update reemplaza los datos del proveedor.
func (uc *UseCase) Update(id int64, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	p := &entity.Proveedor{
		ID:       id,
		Nombre:   in.Nombre,
		Contacto: in.Contacto,
		Telefono: in.Telefono,
		Email:    in.Email,
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// Delete elimina un proveedor. Los insumos que lo referencian conservan una
// referencia nula (sin acoplamiento de ciclo de vida).
func (uc *UseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Contacto: p.Contacto,
		Telefono: p.Telefono,
		Email:    p.Email,
	}
}
