package bitacora

import (
	"context"

	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del store, con los repos atados
// a esa transacción. Crear() valida referencias e inserta de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bitacoras repository.BitacoraRepository,
		firmas repository.FirmaRepository,
		clientes repository.ClienteRepository,
		usuarios repository.UsuarioRepository,
		catalogos repository.CatalogoRepository,
	) error) error
}
