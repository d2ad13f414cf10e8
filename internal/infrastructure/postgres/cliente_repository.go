package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo lecturas de clientes (este sistema no los muta).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, rtn, nombre, email, telefono, activo, created_at, updated_at`

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1`
	return scanCliente(r.q.QueryRow(ctx, query, id), "get cliente")
}

// GetByRTN obtiene un cliente por su RTN; nil si no existe.
func (r *ClienteRepo) GetByRTN(ctx context.Context, rtn string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE rtn = $1`
	return scanCliente(r.q.QueryRow(ctx, query, rtn), "get cliente by rtn")
}

// ListActivos clientes activos ordenados por nombre.
func (r *ClienteRepo) ListActivos(ctx context.Context) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE activo = TRUE ORDER BY nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.RTN, &c.Nombre, &c.Email, &c.Telefono, &c.Activo,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func scanCliente(row pgx.Row, op string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.RTN, &c.Nombre, &c.Email, &c.Telefono, &c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
