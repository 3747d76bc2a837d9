package entity

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolEmpleado = "empleado"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           int64
	Nombre       string
	Username     string // login único (columna "usuario")
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Rol          string // admin | empleado
}
