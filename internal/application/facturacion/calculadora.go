package facturacion

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/internal/domain/repository"
)

// CalcularMonto cotiza una cantidad de horas con las tarifas configuradas:
// base = cantHoras * tarifa según tipoHoras; monto = base + base * comision.
// Función pura sobre aritmética decimal exacta (nunca float binario).
func CalcularMonto(cantHoras decimal.Decimal, tipoHoras string, cfg *entity.Configuracion) (decimal.Decimal, error) {
	if cantHoras.IsNegative() {
		return decimal.Zero, domain.NuevoErrorValidacion("cantHoras", "debe ser mayor o igual a cero")
	}
	var tarifa decimal.Decimal
	switch tipoHoras {
	case entity.HoraPaquete:
		tarifa = cfg.ValorHoraPaquete
	case entity.HoraIndividual:
		tarifa = cfg.ValorHoraIndividual
	default:
		return decimal.Zero, domain.NuevoErrorValidacion("tipoHoras", "tipo de hora inválido")
	}
	base := cantHoras.Mul(tarifa)
	return base.Add(base.Mul(cfg.Comision)), nil
}

// CotizadorUseCase cotiza montos leyendo la configuración de tarifas del store.
type CotizadorUseCase struct {
	configRepo repository.ConfiguracionRepository
}

// NewCotizadorUseCase construye el caso de uso.
func NewCotizadorUseCase(configRepo repository.ConfiguracionRepository) *CotizadorUseCase {
	return &CotizadorUseCase{configRepo: configRepo}
}

// Cotizar calcula el monto para cantHoras del tipo indicado.
func (uc *CotizadorUseCase) Cotizar(ctx context.Context, cantHoras decimal.Decimal, tipoHoras string) (*dto.MontoResponse, error) {
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrDependencia
	}
	monto, err := CalcularMonto(cantHoras, tipoHoras, cfg)
	if err != nil {
		return nil, err
	}
	return &dto.MontoResponse{CantHoras: cantHoras, TipoHoras: tipoHoras, Monto: monto}, nil
}
