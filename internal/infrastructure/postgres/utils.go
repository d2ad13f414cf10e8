package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation.
const codigoUnico = "23505"

// isUniqueViolation detecta el choque contra un constraint único, usado para
// traducirlo a domain.ErrDuplicado / ErrEmailYaRegistrado en los repos.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUnico
}
