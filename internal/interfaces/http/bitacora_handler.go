package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecniservice/bitacoras-api/internal/application/bitacora"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
)

// BitacoraHandler maneja las bitácoras de servicio.
type BitacoraHandler struct {
	uc *bitacora.BitacoraUseCase
}

// NewBitacoraHandler construye el handler.
func NewBitacoraHandler(uc *bitacora.BitacoraUseCase) *BitacoraHandler {
	return &BitacoraHandler{uc: uc}
}

// Crear POST /api/bitacoras
func (h *BitacoraHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearBitacoraRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	b, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusCreated, "bitácora creada", b)
}

// Editar PUT /api/bitacoras/encuesta — edición acotada post-visita.
func (h *BitacoraHandler) Editar(c *fiber.Ctx) error {
	var in dto.EditarBitacoraRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	b, err := h.uc.Editar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "bitácora actualizada", b)
}

// ActualizarCalificacion PUT /api/bitacoras/:id/calificacion
func (h *BitacoraHandler) ActualizarCalificacion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.ActualizarCalificacionRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	b, err := h.uc.ActualizarCalificacion(c.Context(), id, in.Calificacion)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "calificación actualizada", b)
}

// ListarPorCliente GET /api/bitacoras/cliente/:id
func (h *BitacoraHandler) ListarPorCliente(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	list, err := h.uc.ListarPorCliente(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "bitácoras del cliente", list)
}

// ListarPorTecnico GET /api/bitacoras/tecnico/:id
func (h *BitacoraHandler) ListarPorTecnico(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	list, err := h.uc.ListarPorTecnico(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "bitácoras del técnico", list)
}

// ObtenerPorFirma GET /api/bitacoras/firma/:id — contexto de la página de firma remota.
func (h *BitacoraHandler) ObtenerPorFirma(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	b, err := h.uc.ObtenerPorFirma(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "bitácora", b)
}
