package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
	"github.com/tecniservice/bitacoras-api/internal/domain/entity"
	"github.com/tecniservice/bitacoras-api/pkg/token"
)

// Locals keys para la sesión en Fiber.
const (
	LocalEmail = "sesion_email"
	LocalRol   = "sesion_rol"
)

// SesionMiddleware valida el token de sesión que viaja en la cookie y carga
// email y rol en c.Locals. Cookie ausente, malformada, expirada o con firma
// inválida corta la petición con 401; nunca se degrada a identidad anónima.
func SesionMiddleware(secret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cookieName)
		if raw == "" {
			return responderError(c, domain.ErrNoAutenticado)
		}
		payload, err := token.Validar(secret, raw)
		if err != nil {
			return responderError(c, domain.ErrNoAutenticado)
		}
		c.Locals(LocalEmail, payload.Email)
		c.Locals(LocalRol, payload.Rol)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a usuarios con rol admin (después de SesionMiddleware).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRol(c) != entity.RolAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Codigo: "PROHIBIDO", Mensaje: "requiere rol admin",
			})
		}
		return c.Next()
	}
}

// GetEmail devuelve el email de la sesión (después del middleware).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol de la sesión (después del middleware).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// nuevaCookieSesion cookie HTTP-only con el token de sesión.
func nuevaCookieSesion(nombre, tok string, expMinutes int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     nombre,
		Value:    tok,
		Expires:  time.Now().Add(time.Duration(expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}

// cookieRevocada cookie vacía ya expirada: instrucción de borrado para el navegador.
func cookieRevocada(nombre string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     nombre,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}
