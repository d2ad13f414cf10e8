package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

var _ repository.FirmaRepository = (*FirmaRepo)(nil)

// FirmaRepo implementación de FirmaRepository (usable con pool o tx).
type FirmaRepo struct {
	q Querier
}

// NewFirmaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFirmaRepository(q Querier) *FirmaRepo {
	return &FirmaRepo{q: q}
}

const firmaColumns = `id, token, modo, firmante, imagen, url, usada, created_at, updated_at`

// Create persiste una firma nueva y asigna el ID generado.
func (r *FirmaRepo) Create(ctx context.Context, f *entity.Firma) error {
	query := `
		INSERT INTO firmas (token, modo, firmante, imagen, url, usada, created_at, updated_at)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		f.Token, f.Modo, f.Firmante, f.Imagen, f.URL, f.Usada, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert firma: %w", err)
	}
	return nil
}

// GetByID obtiene una firma por ID; nil si no existe.
func (r *FirmaRepo) GetByID(ctx context.Context, id int64) (*entity.Firma, error) {
	query := `SELECT ` + firmaColumns + ` FROM firmas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get firma")
}

// GetByToken obtiene una firma remota por su token; nil si no existe.
func (r *FirmaRepo) GetByToken(ctx context.Context, token string) (*entity.Firma, error) {
	query := `SELECT ` + firmaColumns + ` FROM firmas WHERE token = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, token), "get firma by token")
}

// Finalizar fija imagen y usada=true en una sola sentencia condicionada a
// usada=false. Devuelve false si no afectó filas (inexistente o ya consumida);
// esa condición cierra la ventana de carrera entre finalizaciones concurrentes.
func (r *FirmaRepo) Finalizar(ctx context.Context, id int64, imagen string) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE firmas SET imagen = $2, usada = TRUE, updated_at = NOW()
		WHERE id = $1 AND usada = FALSE`, id, imagen)
	if err != nil {
		return false, fmt.Errorf("finalizar firma: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *FirmaRepo) scanOne(row pgx.Row, op string) (*entity.Firma, error) {
	var f entity.Firma
	var token *string
	err := row.Scan(&f.ID, &token, &f.Modo, &f.Firmante, &f.Imagen, &f.URL, &f.Usada, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if token != nil {
		f.Token = *token
	}
	return &f, nil
}
