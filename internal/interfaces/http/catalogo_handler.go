package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecniservice/bitacoras-api/internal/application/usecase"
)

// CatalogoHandler listados de catálogos activos y clientes (pass-through).
type CatalogoHandler struct {
	catalogoUC *usecase.CatalogoUseCase
	clienteUC  *usecase.ClienteUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(catalogoUC *usecase.CatalogoUseCase, clienteUC *usecase.ClienteUseCase) *CatalogoHandler {
	return &CatalogoHandler{catalogoUC: catalogoUC, clienteUC: clienteUC}
}

// Equipos GET /api/equipos
func (h *CatalogoHandler) Equipos(c *fiber.Ctx) error {
	list, err := h.catalogoUC.EquiposActivos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "equipos activos", list)
}

// Sistemas GET /api/sistemas
func (h *CatalogoHandler) Sistemas(c *fiber.Ctx) error {
	list, err := h.catalogoUC.SistemasActivos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "sistemas activos", list)
}

// TiposServicio GET /api/tipos-servicio
func (h *CatalogoHandler) TiposServicio(c *fiber.Ctx) error {
	list, err := h.catalogoUC.TiposServicioActivos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "tipos de servicio activos", list)
}

// Fases GET /api/fases
func (h *CatalogoHandler) Fases(c *fiber.Ctx) error {
	list, err := h.catalogoUC.FasesActivas(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "fases de implementación activas", list)
}

// Clientes GET /api/clientes
func (h *CatalogoHandler) Clientes(c *fiber.Ctx) error {
	list, err := h.clienteUC.ListarActivos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "clientes activos", list)
}

// ClientePorRTN GET /api/clientes/rtn/:rtn
func (h *CatalogoHandler) ClientePorRTN(c *fiber.Ctx) error {
	cliente, err := h.clienteUC.ObtenerPorRTN(c.Context(), c.Params("rtn"))
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "cliente", cliente)
}
