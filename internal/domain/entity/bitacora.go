package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de hora facturables.
const (
	HoraPaquete    = "Paquete"
	HoraIndividual = "Individual"
)

// Límites de la calificación de una bitácora (inclusive).
const (
	CalificacionMin = 0
	CalificacionMax = 10
)

// Bitacora registro de una visita de servicio técnico. Referencia una Firma ya
// existente (puede estar pendiente de finalizar si es remota). La calificación
// solo se modifica por la operación explícita de calificar.
type Bitacora struct {
	ID                   int64
	ClienteID            int64
	TecnicoID            int64
	EquipoID             int64
	SistemaID            int64
	TipoServicioID       int64
	FirmaID              int64
	FaseImplementacionID int64
	Descripcion          string
	Observaciones        string
	Encuesta             string // respuesta libre de la encuesta post-visita
	CantHoras            decimal.Decimal
	TipoHoras            string // Paquete, Individual
	Calificacion         int    // 0–10
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
