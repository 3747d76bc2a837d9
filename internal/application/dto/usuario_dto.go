package dto

// CreateUsuarioRequest entrada para crear un usuario.
type CreateUsuarioRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Username   string `json:"usuario" validate:"required"`
	Contrasena string `json:"contraseña" validate:"required,min=8"`
	Rol        string `json:"rol"` // vacío -> empleado
}

// UpdateUsuarioRequest entrada para actualizar un usuario.
// Contrasena vacía conserva la credencial actual.
type UpdateUsuarioRequest struct {
	Nombre     string `json:"nombre"`
	Username   string `json:"usuario"`
	Contrasena string `json:"contraseña"`
	Rol        string `json:"rol"`
}

// UsuarioResponse salida de un usuario; nunca incluye la credencial.
type UsuarioResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Username string `json:"usuario"`
	Rol      string `json:"rol"`
}

// LoginRequest body para POST /login.
type LoginRequest struct {
	Username   string `json:"usuario" validate:"required"`
	Contrasena string `json:"contraseña" validate:"required"`
}

// LoginResponse token de acceso más el usuario autenticado (sin credencial).
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
