package facturacion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecniservice/bitacoras-api/internal/application/facturacion"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// CalcularMonto — aritmética decimal exacta sobre las tarifas configuradas.
// monto = cantHoras * tarifa + (cantHoras * tarifa) * comision
// ──────────────────────────────────────────────────────────────────────────────

func configDePrueba() *entity.Configuracion {
	return &entity.Configuracion{
		ID:                  1,
		ValorHoraPaquete:    decimal.RequireFromString("100"),
		ValorHoraIndividual: decimal.RequireFromString("200"),
		Comision:            decimal.RequireFromString("0.1"),
	}
}

func TestCalcularMonto_PaqueteConComision(t *testing.T) {
	// 10h * 100 = 1000; 1000 + 1000*0.1 = 1100
	monto, err := facturacion.CalcularMonto(
		decimal.RequireFromString("10"), entity.HoraPaquete, configDePrueba())

	require.NoError(t, err)
	assert.True(t, monto.Equal(decimal.RequireFromString("1100")),
		"10 horas Paquete a 100 con comisión 0.1 deben cotizar 1100, no %s", monto)
}

func TestCalcularMonto_IndividualSinComision(t *testing.T) {
	cfg := configDePrueba()
	cfg.Comision = decimal.Zero

	// 5h * 200 = 1000; sin comisión el monto es la base
	monto, err := facturacion.CalcularMonto(
		decimal.RequireFromString("5"), entity.HoraIndividual, cfg)

	require.NoError(t, err)
	assert.True(t, monto.Equal(decimal.RequireFromString("1000")),
		"5 horas Individual a 200 sin comisión deben cotizar 1000, no %s", monto)
}

func TestCalcularMonto_HorasFraccionarias_SinErrorBinario(t *testing.T) {
	cfg := configDePrueba()
	cfg.ValorHoraPaquete = decimal.RequireFromString("0.1")
	cfg.Comision = decimal.Zero

	// 0.1 * 3 en float binario daría 0.30000000000000004; en decimal debe ser 0.3
	monto, err := facturacion.CalcularMonto(
		decimal.RequireFromString("3"), entity.HoraPaquete, cfg)

	require.NoError(t, err)
	assert.True(t, monto.Equal(decimal.RequireFromString("0.3")),
		"la aritmética debe ser decimal exacta: esperado 0.3, obtenido %s", monto)
}

func TestCalcularMonto_CeroHoras_CotizaCero(t *testing.T) {
	monto, err := facturacion.CalcularMonto(decimal.Zero, entity.HoraPaquete, configDePrueba())

	require.NoError(t, err)
	assert.True(t, monto.IsZero(), "cero horas deben cotizar monto cero")
}

func TestCalcularMonto_HorasNegativas_RetornaValidacion(t *testing.T) {
	_, err := facturacion.CalcularMonto(
		decimal.RequireFromString("-1"), entity.HoraPaquete, configDePrueba())

	var ev *domain.ErrorValidacion
	require.ErrorAs(t, err, &ev, "horas negativas deben producir error de validación")
	assert.Contains(t, ev.Campos, "cantHoras")
}

func TestCalcularMonto_TipoHorasDesconocido_RetornaValidacion(t *testing.T) {
	_, err := facturacion.CalcularMonto(
		decimal.RequireFromString("2"), "Otro", configDePrueba())

	var ev *domain.ErrorValidacion
	require.ErrorAs(t, err, &ev, "un tipo de hora fuera del catálogo debe rechazarse")
	assert.Contains(t, ev.Campos, "tipoHoras")
}

// ──────────────────────────────────────────────────────────────────────────────
// CotizadorUseCase — lectura de la configuración desde el store.
// ──────────────────────────────────────────────────────────────────────────────

type configRepoFake struct {
	cfg *entity.Configuracion
	err error
}

func (r *configRepoFake) Get(_ context.Context) (*entity.Configuracion, error) {
	return r.cfg, r.err
}

func TestCotizar_UsaConfiguracionDelStore(t *testing.T) {
	uc := facturacion.NewCotizadorUseCase(&configRepoFake{cfg: configDePrueba()})

	out, err := uc.Cotizar(context.Background(), decimal.RequireFromString("10"), entity.HoraPaquete)
	require.NoError(t, err)

	assert.Equal(t, entity.HoraPaquete, out.TipoHoras)
	assert.True(t, out.Monto.Equal(decimal.RequireFromString("1100")))
}

func TestCotizar_SinConfiguracion_RetornaDependencia(t *testing.T) {
	uc := facturacion.NewCotizadorUseCase(&configRepoFake{cfg: nil})

	_, err := uc.Cotizar(context.Background(), decimal.RequireFromString("1"), entity.HoraPaquete)
	assert.ErrorIs(t, err, domain.ErrDependencia,
		"sin registro de configuración la cotización no puede resolverse")
}

func TestCotizar_ErrorDelStore_SePropaga(t *testing.T) {
	errStore := errors.New("conexión caída")
	uc := facturacion.NewCotizadorUseCase(&configRepoFake{err: errStore})

	_, err := uc.Cotizar(context.Background(), decimal.RequireFromString("1"), entity.HoraPaquete)
	assert.ErrorIs(t, err, errStore)
}
