package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/application/firma"
	"github.com/tecniservice/bitacoras-api/internal/domain"
)

// FirmaHandler maneja el ciclo de vida de las firmas.
type FirmaHandler struct {
	uc *firma.FirmaUseCase
}

// NewFirmaHandler construye el handler.
func NewFirmaHandler(uc *firma.FirmaUseCase) *FirmaHandler {
	return &FirmaHandler{uc: uc}
}

// CrearPresencial POST /api/firmas/presencial — firma del cliente capturada en sitio.
func (h *FirmaHandler) CrearPresencial(c *fiber.Ctx) error {
	var in dto.CrearFirmaPresencialRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	f, err := h.uc.CrearPresencial(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusCreated, "firma registrada", f)
}

// CrearTecnico POST /api/firmas/tecnico — firma del técnico capturada en sitio.
func (h *FirmaHandler) CrearTecnico(c *fiber.Ctx) error {
	var in dto.CrearFirmaPresencialRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	f, err := h.uc.CrearParaTecnico(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusCreated, "firma registrada", f)
}

// CrearRemota POST /api/firmas/remota — emite el enlace de firma de un solo uso.
func (h *FirmaHandler) CrearRemota(c *fiber.Ctx) error {
	var in dto.CrearFirmaRemotaRequest
	// Cuerpo opcional: sin destinatario solo se genera el enlace.
	_ = c.BodyParser(&in)
	f, err := h.uc.CrearRemota(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusCreated, "firma remota creada", f)
}

// Finalizar PUT /api/firmas/:id/finalizar — completa una firma remota (una sola vez).
func (h *FirmaHandler) Finalizar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.FinalizarFirmaRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	f, err := h.uc.Finalizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "firma finalizada", f)
}

// Verificar GET /api/firmas/:id/verificar — sondeo de estado. Siempre 200 con
// firmada=false ante cualquier condición que no sea comprobante completo.
func (h *FirmaHandler) Verificar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	firmada := h.uc.Verificar(c.Context(), id)
	return responder(c, fiber.StatusOK, "estado de la firma", dto.VerificarFirmaResponse{Firmada: firmada})
}

// ObtenerPorID GET /api/firmas/:id
func (h *FirmaHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	f, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "firma", f)
}

// ObtenerPorToken GET /api/firmas/token/:token — contexto para la página de firma remota.
func (h *FirmaHandler) ObtenerPorToken(c *fiber.Ctx) error {
	f, err := h.uc.ObtenerPorToken(c.Context(), c.Params("token"))
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "firma", f)
}
