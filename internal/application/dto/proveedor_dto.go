package dto

// ProveedorRequest entrada para crear o actualizar un proveedor.
type ProveedorRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Contacto string `json:"contacto"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
}
