package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"
	RolTecnico = "tecnico"
)

// Usuario representa un técnico o administrador del sistema.
// Nunca se elimina físicamente; se desactiva con Activo=false.
type Usuario struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, tecnico
	Zona         string
	Telefono     string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
