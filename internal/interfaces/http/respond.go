package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
)

// responder envoltura uniforme de éxito: código, mensaje y resultado.
func responder(c *fiber.Ctx, status int, mensaje string, resultado interface{}) error {
	return c.Status(status).JSON(dto.Respuesta{Codigo: status, Mensaje: mensaje, Resultado: resultado})
}

// responderError traductor único de errores de dominio a HTTP. Todo fallo de
// los casos de uso pasa por aquí: validación → 400 con detalle por campo,
// no autenticado → 401, no encontrado → 404, firma consumida → 409 y cualquier
// cosa sin clasificar → 500 con mensaje genérico (sin detalle interno).
func responderError(c *fiber.Ctx, err error) error {
	var vErr *domain.ErrorValidacion
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "VALIDACION", Mensaje: "entrada inválida", Campos: vErr.Campos,
		})
	case errors.Is(err, domain.ErrNoAutenticado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Codigo: "NO_AUTENTICADO", Mensaje: "sesión inválida o expirada",
		})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUsuarioNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Codigo: "NO_ENCONTRADO", Mensaje: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrFirmaYaUsada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Codigo: "FIRMA_USADA", Mensaje: "la firma ya fue utilizada",
		})
	case errors.Is(err, domain.ErrEmailYaRegistrado), errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Codigo: "DUPLICADO", Mensaje: "el recurso ya existe",
		})
	default:
		log.Error().Err(err).Str("ruta", c.Path()).Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Codigo: "INTERNO", Mensaje: "error interno",
		})
	}
}

// parseID lee un segmento de ruta como entero estrictamente positivo.
// Un segmento no numérico o no positivo es un fallo de validación, no un 404.
func parseID(c *fiber.Ctx, nombre string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(nombre), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NuevoErrorValidacion(nombre, "debe ser un entero positivo")
	}
	return id, nil
}
