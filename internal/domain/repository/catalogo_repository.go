package repository

import (
	"context"

	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
)

// CatalogoRepository lecturas de los catálogos de la visita (solo filas activas
// en los listados). Son datos paramétricos: este sistema no los muta.
type CatalogoRepository interface {
	ListEquiposActivos(ctx context.Context) ([]*entity.Equipo, error)
	ListSistemasActivos(ctx context.Context) ([]*entity.Sistema, error)
	ListTiposServicioActivos(ctx context.Context) ([]*entity.TipoServicio, error)
	ListFasesActivas(ctx context.Context) ([]*entity.FaseImplementacion, error)
	ExisteEquipo(ctx context.Context, id int64) (bool, error)
	ExisteSistema(ctx context.Context, id int64) (bool, error)
	ExisteTipoServicio(ctx context.Context, id int64) (bool, error)
	ExisteFase(ctx context.Context, id int64) (bool, error)
}
