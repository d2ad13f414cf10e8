package repository

import (
	"context"

	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
)

// ConfiguracionRepository lectura del registro único de tarifas.
type ConfiguracionRepository interface {
	Get(ctx context.Context) (*entity.Configuracion, error)
}
