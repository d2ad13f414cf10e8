package repository

import (
	"context"

	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
)

// ClienteRepository acceso de solo lectura a clientes.
type ClienteRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	GetByRTN(ctx context.Context, rtn string) (*entity.Cliente, error)
	ListActivos(ctx context.Context) ([]*entity.Cliente, error)
}
