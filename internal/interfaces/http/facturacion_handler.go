package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tecniservice/bitacoras-api/internal/application/facturacion"
	"github.com/tecniservice/bitacoras-api/internal/domain"
)

// FacturacionHandler cotización de montos de servicio.
type FacturacionHandler struct {
	uc *facturacion.CotizadorUseCase
}

// NewFacturacionHandler construye el handler.
func NewFacturacionHandler(uc *facturacion.CotizadorUseCase) *FacturacionHandler {
	return &FacturacionHandler{uc: uc}
}

// CotizarMonto GET /api/facturacion/monto?cant_horas=10&tipo_horas=Paquete
func (h *FacturacionHandler) CotizarMonto(c *fiber.Ctx) error {
	cantHoras, err := decimal.NewFromString(c.Query("cant_horas"))
	if err != nil {
		return responderError(c, domain.NuevoErrorValidacion("cant_horas", "debe ser un número"))
	}
	out, err := h.uc.Cotizar(c.Context(), cantHoras, c.Query("tipo_horas"))
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "monto cotizado", out)
}
