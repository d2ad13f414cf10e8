package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecniservice/bitacoras-api/internal/application/auth"
	"github.com/tecniservice/bitacoras-api/internal/application/dto"
	"github.com/tecniservice/bitacoras-api/internal/domain"
)

// AuthHandler maneja login, sesión y logout.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	cookieName string
	expMinutes int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookieName string, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, expMinutes: expMinutes}
}

// Login godoc
// @Summary      Iniciar sesión (emite la cookie de sesión)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Respuesta
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.NuevoErrorValidacion("body", "cuerpo inválido"))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	c.Cookie(nuevaCookieSesion(h.cookieName, out.Token, h.expMinutes))
	return responder(c, fiber.StatusOK, "sesión iniciada", out)
}

// Sesion godoc
// @Summary      Usuario de la sesión activa
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sesion [get]
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	usuario, err := h.uc.Sesion(c.Context(), GetEmail(c))
	if err != nil {
		return responderError(c, err)
	}
	return responder(c, fiber.StatusOK, "sesión activa", usuario)
}

// Verificar godoc
// @Summary      Payload de la sesión (email y rol)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sesion/verificar [get]
func (h *AuthHandler) Verificar(c *fiber.Ctx) error {
	return responder(c, fiber.StatusOK, "sesión válida", dto.SesionResponse{
		Email: GetEmail(c),
		Rol:   GetRol(c),
	})
}

// Logout godoc
// @Summary      Cerrar sesión (borra la cookie)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Router       /api/sesion/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(cookieRevocada(h.cookieName))
	return responder(c, fiber.StatusOK, "sesión cerrada", nil)
}
