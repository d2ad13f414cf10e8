package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

var _ repository.ConfiguracionRepository = (*ConfiguracionRepo)(nil)

// ConfiguracionRepo lectura del registro único de tarifas.
type ConfiguracionRepo struct {
	q Querier
}

// NewConfiguracionRepository construye el adaptador.
func NewConfiguracionRepository(q Querier) *ConfiguracionRepo {
	return &ConfiguracionRepo{q: q}
}

// Get devuelve la configuración de tarifas; nil si la tabla está vacía.
func (r *ConfiguracionRepo) Get(ctx context.Context) (*entity.Configuracion, error) {
	query := `
		SELECT id, valor_hora_paquete, valor_hora_individual, comision
		FROM configuracion ORDER BY id LIMIT 1`
	var c entity.Configuracion
	err := r.q.QueryRow(ctx, query).Scan(&c.ID, &c.ValorHoraPaquete, &c.ValorHoraIndividual, &c.Comision)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuracion: %w", err)
	}
	return &c, nil
}
