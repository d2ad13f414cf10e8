package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecniservice/bitacoras-api/internal/application/bitacora"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

var _ bitacora.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit
// o Rollback. La creación de bitácoras valida sus referencias y escribe dentro
// de la misma tx, así que o aplica completa o no aplica.
func (r *TxRunner) Run(ctx context.Context, fn func(
	bitacoras repository.BitacoraRepository,
	firmas repository.FirmaRepository,
	clientes repository.ClienteRepository,
	usuarios repository.UsuarioRepository,
	catalogos repository.CatalogoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewBitacoraRepository(tx),
		NewFirmaRepository(tx),
		NewClienteRepository(tx),
		NewUsuarioRepository(tx),
		NewCatalogoRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
