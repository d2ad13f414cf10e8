package repository

import (
	"context"

	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
)

// BitacoraRepository puerto de persistencia para Bitacora.
type BitacoraRepository interface {
	Create(ctx context.Context, b *entity.Bitacora) error
	GetByID(ctx context.Context, id int64) (*entity.Bitacora, error)
	// ActualizarEncuesta edita solo los campos de la encuesta post-visita.
	// Las referencias (firma, cliente, técnico) no son modificables.
	ActualizarEncuesta(ctx context.Context, id int64, encuesta, observaciones string, faseID int64) (bool, error)
	// ActualizarCalificacion sobrescribe la calificación sin condiciones.
	ActualizarCalificacion(ctx context.Context, id int64, calificacion int) (bool, error)
	ListByCliente(ctx context.Context, clienteID int64) ([]*entity.Bitacora, error)
	ListByTecnico(ctx context.Context, tecnicoID int64) ([]*entity.Bitacora, error)
	GetByFirma(ctx context.Context, firmaID int64) (*entity.Bitacora, error)
}
