package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

var _ repository.BitacoraRepository = (*BitacoraRepo)(nil)

// BitacoraRepo implementación de BitacoraRepository (usable con pool o tx).
type BitacoraRepo struct {
	q Querier
}

// NewBitacoraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBitacoraRepository(q Querier) *BitacoraRepo {
	return &BitacoraRepo{q: q}
}

const bitacoraColumns = `id, cliente_id, tecnico_id, equipo_id, sistema_id, tipo_servicio_id,
		firma_id, fase_implementacion_id, descripcion, observaciones, encuesta,
		cant_horas, tipo_horas, calificacion, created_at, updated_at`

// Create persiste una bitácora nueva y asigna el ID generado.
func (r *BitacoraRepo) Create(ctx context.Context, b *entity.Bitacora) error {
	query := `
		INSERT INTO bitacoras (cliente_id, tecnico_id, equipo_id, sistema_id, tipo_servicio_id,
			firma_id, fase_implementacion_id, descripcion, observaciones, encuesta,
			cant_horas, tipo_horas, calificacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		b.ClienteID, b.TecnicoID, b.EquipoID, b.SistemaID, b.TipoServicioID,
		b.FirmaID, b.FaseImplementacionID, b.Descripcion, b.Observaciones, b.Encuesta,
		b.CantHoras, b.TipoHoras, b.Calificacion, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert bitacora: %w", err)
	}
	return nil
}

// GetByID obtiene una bitácora por ID; nil si no existe.
func (r *BitacoraRepo) GetByID(ctx context.Context, id int64) (*entity.Bitacora, error) {
	query := `SELECT ` + bitacoraColumns + ` FROM bitacoras WHERE id = $1`
	return scanBitacora(r.q.QueryRow(ctx, query, id), "get bitacora")
}

// ActualizarEncuesta edición acotada post-visita: solo encuesta, observaciones
// y fase. Las referencias a firma/cliente/técnico quedan fuera del SET.
func (r *BitacoraRepo) ActualizarEncuesta(ctx context.Context, id int64, encuesta, observaciones string, faseID int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE bitacoras
		SET encuesta = $2, observaciones = $3, fase_implementacion_id = $4, updated_at = NOW()
		WHERE id = $1`, id, encuesta, observaciones, faseID)
	if err != nil {
		return false, fmt.Errorf("actualizar encuesta: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ActualizarCalificacion sobrescritura incondicional de la calificación.
func (r *BitacoraRepo) ActualizarCalificacion(ctx context.Context, id int64, calificacion int) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE bitacoras SET calificacion = $2, updated_at = NOW() WHERE id = $1`,
		id, calificacion)
	if err != nil {
		return false, fmt.Errorf("actualizar calificacion: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByCliente bitácoras de un cliente, más recientes primero.
func (r *BitacoraRepo) ListByCliente(ctx context.Context, clienteID int64) ([]*entity.Bitacora, error) {
	query := `SELECT ` + bitacoraColumns + ` FROM bitacoras WHERE cliente_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, clienteID)
}

// ListByTecnico bitácoras levantadas por un técnico, más recientes primero.
func (r *BitacoraRepo) ListByTecnico(ctx context.Context, tecnicoID int64) ([]*entity.Bitacora, error) {
	query := `SELECT ` + bitacoraColumns + ` FROM bitacoras WHERE tecnico_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, tecnicoID)
}

// GetByFirma búsqueda inversa por la firma referenciada; nil si no existe.
func (r *BitacoraRepo) GetByFirma(ctx context.Context, firmaID int64) (*entity.Bitacora, error) {
	query := `SELECT ` + bitacoraColumns + ` FROM bitacoras WHERE firma_id = $1`
	return scanBitacora(r.q.QueryRow(ctx, query, firmaID), "get bitacora by firma")
}

func (r *BitacoraRepo) list(ctx context.Context, query string, arg any) ([]*entity.Bitacora, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list bitacoras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bitacora
	for rows.Next() {
		var b entity.Bitacora
		if err := rows.Scan(
			&b.ID, &b.ClienteID, &b.TecnicoID, &b.EquipoID, &b.SistemaID, &b.TipoServicioID,
			&b.FirmaID, &b.FaseImplementacionID, &b.Descripcion, &b.Observaciones, &b.Encuesta,
			&b.CantHoras, &b.TipoHoras, &b.Calificacion, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bitacora: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func scanBitacora(row pgx.Row, op string) (*entity.Bitacora, error) {
	var b entity.Bitacora
	err := row.Scan(
		&b.ID, &b.ClienteID, &b.TecnicoID, &b.EquipoID, &b.SistemaID, &b.TipoServicioID,
		&b.FirmaID, &b.FaseImplementacionID, &b.Descripcion, &b.Observaciones, &b.Encuesta,
		&b.CantHoras, &b.TipoHoras, &b.Calificacion, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}
