package postgres

import (
	"context"
	"fmt"

	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo lecturas de las cuatro tablas paramétricas de la visita.
// Comparten forma (id, nombre, activo), así que un solo adaptador las sirve.
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

// filaCatalogo forma común de las tablas paramétricas.
type filaCatalogo struct {
	ID     int64
	Nombre string
	Activo bool
}

func (r *CatalogoRepo) listActivos(ctx context.Context, tabla string) ([]filaCatalogo, error) {
	// tabla proviene de constantes internas, nunca de entrada del usuario.
	query := fmt.Sprintf(`SELECT id, nombre, activo FROM %s WHERE activo = TRUE ORDER BY nombre`, tabla)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", tabla, err)
	}
	defer rows.Close()
	var list []filaCatalogo
	for rows.Next() {
		var f filaCatalogo
		if err := rows.Scan(&f.ID, &f.Nombre, &f.Activo); err != nil {
			return nil, fmt.Errorf("scan %s: %w", tabla, err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *CatalogoRepo) existe(ctx context.Context, tabla string, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, tabla)
	var ok bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("existe %s: %w", tabla, err)
	}
	return ok, nil
}

// ListEquiposActivos equipos activos.
func (r *CatalogoRepo) ListEquiposActivos(ctx context.Context) ([]*entity.Equipo, error) {
	filas, err := r.listActivos(ctx, "equipos")
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Equipo, 0, len(filas))
	for _, f := range filas {
		out = append(out, &entity.Equipo{ID: f.ID, Nombre: f.Nombre, Activo: f.Activo})
	}
	return out, nil
}

// ListSistemasActivos sistemas activos.
func (r *CatalogoRepo) ListSistemasActivos(ctx context.Context) ([]*entity.Sistema, error) {
	filas, err := r.listActivos(ctx, "sistemas")
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Sistema, 0, len(filas))
	for _, f := range filas {
		out = append(out, &entity.Sistema{ID: f.ID, Nombre: f.Nombre, Activo: f.Activo})
	}
	return out, nil
}

// ListTiposServicioActivos tipos de servicio activos.
func (r *CatalogoRepo) ListTiposServicioActivos(ctx context.Context) ([]*entity.TipoServicio, error) {
	filas, err := r.listActivos(ctx, "tipos_servicio")
	if err != nil {
		return nil, err
	}
	out := make([]*entity.TipoServicio, 0, len(filas))
	for _, f := range filas {
		out = append(out, &entity.TipoServicio{ID: f.ID, Nombre: f.Nombre, Activo: f.Activo})
	}
	return out, nil
}

// ListFasesActivas fases de implementación activas.
func (r *CatalogoRepo) ListFasesActivas(ctx context.Context) ([]*entity.FaseImplementacion, error) {
	filas, err := r.listActivos(ctx, "fases_implementacion")
	if err != nil {
		return nil, err
	}
	out := make([]*entity.FaseImplementacion, 0, len(filas))
	for _, f := range filas {
		out = append(out, &entity.FaseImplementacion{ID: f.ID, Nombre: f.Nombre, Activo: f.Activo})
	}
	return out, nil
}

// ExisteEquipo indica si el equipo existe.
func (r *CatalogoRepo) ExisteEquipo(ctx context.Context, id int64) (bool, error) {
	return r.existe(ctx, "equipos", id)
}

// ExisteSistema indica si el sistema existe.
func (r *CatalogoRepo) ExisteSistema(ctx context.Context, id int64) (bool, error) {
	return r.existe(ctx, "sistemas", id)
}

// ExisteTipoServicio indica si el tipo de servicio existe.
func (r *CatalogoRepo) ExisteTipoServicio(ctx context.Context, id int64) (bool, error) {
	return r.existe(ctx, "tipos_servicio", id)
}

// ExisteFase indica si la fase de implementación existe.
func (r *CatalogoRepo) ExisteFase(ctx context.Context, id int64) (bool, error) {
	return r.existe(ctx, "fases_implementacion", id)
}
