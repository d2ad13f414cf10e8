package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tecniservice/bitacoras-api/internal/application/auth"
	appbitacora "github.com/tecniservice/bitacoras-api/internal/application/bitacora"
	"github.com/tecniservice/bitacoras-api/internal/application/facturacion"
	appfirma "github.com/tecniservice/bitacoras-api/internal/application/firma"
	"github.com/tecniservice/bitacoras-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	FirmaUC       *appfirma.FirmaUseCase
	BitacoraUC    *appbitacora.BitacoraUseCase
	CotizadorUC   *facturacion.CotizadorUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	CatalogoUC    *usecase.CatalogoUseCase
	ClienteUC     *usecase.ClienteUseCase
	JWTSecret     string
	SessionCookie string
	JWTExpMinutes int
}

// Router registra las rutas de la API. Las rutas de firma remota (finalizar,
// verificar, token) y el login son públicas; el resto exige sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionCookie, deps.JWTExpMinutes)
	firmaHandler := NewFirmaHandler(deps.FirmaUC)
	bitacoraHandler := NewBitacoraHandler(deps.BitacoraUC)
	facturacionHandler := NewFacturacionHandler(deps.CotizadorUC)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC, deps.ClienteUC)

	// Auth (público)
	api.Post("/auth/login", authHandler.Login)

	// Firma remota (público: la usa quien recibe el enlace, sin sesión)
	api.Put("/firmas/:id/finalizar", firmaHandler.Finalizar)
	api.Get("/firmas/:id/verificar", firmaHandler.Verificar)
	api.Get("/firmas/token/:token", firmaHandler.ObtenerPorToken)
	api.Get("/bitacoras/firma/:id", bitacoraHandler.ObtenerPorFirma)

	// Rutas protegidas (requieren cookie de sesión válida)
	sesion := SesionMiddleware(deps.JWTSecret, deps.SessionCookie)
	protected := api.Group("/", sesion)

	// Sesión
	protected.Get("/sesion", authHandler.Sesion)
	protected.Get("/sesion/verificar", authHandler.Verificar)
	protected.Post("/sesion/logout", authHandler.Logout)

	// Firmas (protegido)
	protected.Post("/firmas/presencial", firmaHandler.CrearPresencial)
	protected.Post("/firmas/tecnico", firmaHandler.CrearTecnico)
	protected.Post("/firmas/remota", firmaHandler.CrearRemota)
	protected.Get("/firmas/:id", firmaHandler.ObtenerPorID)

	// Bitácoras (protegido)
	protected.Post("/bitacoras", bitacoraHandler.Crear)
	protected.Put("/bitacoras/encuesta", bitacoraHandler.Editar)
	protected.Put("/bitacoras/:id/calificacion", bitacoraHandler.ActualizarCalificacion)
	protected.Get("/bitacoras/cliente/:id", bitacoraHandler.ListarPorCliente)
	protected.Get("/bitacoras/tecnico/:id", bitacoraHandler.ListarPorTecnico)

	// Facturación (protegido)
	protected.Get("/facturacion/monto", facturacionHandler.CotizarMonto)

	// Catálogos y clientes (protegido)
	protected.Get("/equipos", catalogoHandler.Equipos)
	protected.Get("/sistemas", catalogoHandler.Sistemas)
	protected.Get("/tipos-servicio", catalogoHandler.TiposServicio)
	protected.Get("/fases", catalogoHandler.Fases)
	protected.Get("/clientes", catalogoHandler.Clientes)
	protected.Get("/clientes/rtn/:rtn", catalogoHandler.ClientePorRTN)

	// Usuarios (protegido, solo admin)
	usuarios := protected.Group("/usuarios", RequireAdmin())
	usuarios.Post("/", usuarioHandler.Crear)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Get("/:id", usuarioHandler.ObtenerPorID)
	usuarios.Put("/:id", usuarioHandler.Actualizar)
	usuarios.Delete("/:id", usuarioHandler.Desactivar)
}
