package dto

import "time"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión + usuario autenticado. El token también viaja
// en la cookie de sesión.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// SesionResponse payload derivado del token de sesión (no se persiste).
type SesionResponse struct {
	Email string `json:"email"`
	Rol   string `json:"rol"`
}

// CrearUsuarioRequest alta de usuario por un administrador.
type CrearUsuarioRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"` // admin, tecnico
	Zona     string `json:"zona"`
	Telefono string `json:"telefono"`
}

// ActualizarUsuarioRequest edición de datos no credenciales.
type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
	Zona     string `json:"zona"`
	Telefono string `json:"telefono"`
}

// UsuarioResponse representación pública de un usuario (sin hash).
type UsuarioResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Zona      string    `json:"zona"`
	Telefono  string    `json:"telefono"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
