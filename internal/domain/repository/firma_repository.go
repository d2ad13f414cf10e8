package repository

import (
	"context"

	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
)

// FirmaRepository puerto de persistencia para Firma.
type FirmaRepository interface {
	// Create persiste la firma y asigna su ID. Retorna domain.ErrDuplicado si
	// el token ya existe (constraint único).
	Create(ctx context.Context, firma *entity.Firma) error
	GetByID(ctx context.Context, id int64) (*entity.Firma, error)
	GetByToken(ctx context.Context, token string) (*entity.Firma, error)
	// Finalizar aplica la única mutación permitida: imagen + usada=true en una
	// sola sentencia condicionada a usada=false. Retorna si afectó alguna fila.
	Finalizar(ctx context.Context, id int64, imagen string) (bool, error)
}
