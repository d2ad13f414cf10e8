package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearBitacoraRequest datos iniciales de la visita. Todas las referencias deben
// ser enteros positivos de entidades existentes; la firma puede estar pendiente.
type CrearBitacoraRequest struct {
	ClienteID            int64           `json:"cliente_id"`
	TecnicoID            int64           `json:"tecnico_id"`
	EquipoID             int64           `json:"equipo_id"`
	SistemaID            int64           `json:"sistema_id"`
	TipoServicioID       int64           `json:"tipo_servicio_id"`
	FirmaID              int64           `json:"firma_id"`
	FaseImplementacionID int64           `json:"fase_implementacion_id"`
	Descripcion          string          `json:"descripcion"`
	Observaciones        string          `json:"observaciones"`
	CantHoras            decimal.Decimal `json:"cant_horas"`
	TipoHoras            string          `json:"tipo_horas"` // Paquete, Individual
}

// EditarBitacoraRequest edición acotada post-visita (encuesta). No permite tocar
// las referencias a firma, cliente ni técnico.
type EditarBitacoraRequest struct {
	ID                   int64  `json:"id"`
	Encuesta             string `json:"encuesta"`
	Observaciones        string `json:"observaciones"`
	FaseImplementacionID int64  `json:"fase_implementacion_id"`
}

// ActualizarCalificacionRequest calificación 0–10 (sobrescritura idempotente).
type ActualizarCalificacionRequest struct {
	Calificacion int `json:"calificacion"`
}

// BitacoraResponse representación pública de una bitácora.
type BitacoraResponse struct {
	ID                   int64           `json:"id"`
	ClienteID            int64           `json:"cliente_id"`
	TecnicoID            int64           `json:"tecnico_id"`
	EquipoID             int64           `json:"equipo_id"`
	SistemaID            int64           `json:"sistema_id"`
	TipoServicioID       int64           `json:"tipo_servicio_id"`
	FirmaID              int64           `json:"firma_id"`
	FaseImplementacionID int64           `json:"fase_implementacion_id"`
	Descripcion          string          `json:"descripcion"`
	Observaciones        string          `json:"observaciones"`
	Encuesta             string          `json:"encuesta"`
	CantHoras            decimal.Decimal `json:"cant_horas"`
	TipoHoras            string          `json:"tipo_horas"`
	Calificacion         int             `json:"calificacion"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
