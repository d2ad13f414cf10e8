package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/application/usecase"
	"github.com/tecniservice/bitacoras-api/internal/domain"
)

// UsuarioHandler administración de usuarios (rutas de admin).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Crear POST /api/usuarios
func (h *UsuarioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	u, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusCreated, "usuario creado", u)
}

// Listar GET /api/usuarios?limit=20&offset=0
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.Listar(c.Context(), limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "usuarios", list)
}

// ObtenerPorID GET /api/usuarios/:id
func (h *UsuarioHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	u, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "usuario", u)
}

// Actualizar PUT /api/usuarios/:id
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	u, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "usuario actualizado", u)
}

// Desactivar DELETE /api/usuarios/:id — baja lógica, nunca elimina la fila.
func (h *UsuarioHandler) Desactivar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return responderError(c, err)
	}
	if err := h.uc.Desactivar(c.Context(), id); err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "usuario desactivado", nil)
}
