package entity

import "time"

// Cliente empresa atendida, identificada por su RTN (14 caracteres).
// De solo lectura para este sistema: se consulta, no se muta.
type Cliente struct {
	ID        int64
	RTN       string
	Nombre    string
	Email     string
	Telefono  string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
