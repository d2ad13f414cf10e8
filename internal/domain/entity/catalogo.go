package entity

import "time"

// Equipo hardware atendido en una visita.
type Equipo struct {
	ID        int64
	Nombre    string
	Activo    bool
	CreatedAt time.Time
}

// Sistema software/plataforma instalada en el cliente.
type Sistema struct {
	ID        int64
	Nombre    string
	Activo    bool
	CreatedAt time.Time
}

// TipoServicio clase de servicio prestado (instalación, soporte, capacitación...).
type TipoServicio struct {
	ID        int64
	Nombre    string
	Activo    bool
	CreatedAt time.Time
}

// FaseImplementacion etapa del proyecto en la que ocurre la visita.
type FaseImplementacion struct {
	ID        int64
	Nombre    string
	Activo    bool
	CreatedAt time.Time
}
