package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tecniservice/bitacoras-api/internal/application/auth"
	appbitacora "github.com/tecniservice/bitacoras-api/internal/application/bitacora"
	"github.com/tecniservice/bitacoras-api/internal/application/facturacion"
	appfirma "github.com/tecniservice/bitacoras-api/internal/application/firma"
	"github.com/tecniservice/bitacoras-api/internal/application/ports"
	"github.com/tecniservice/bitacoras-api/internal/application/usecase"
	"github.com/tecniservice/bitacoras-api/internal/infrastructure/email"
	"github.com/tecniservice/bitacoras-api/internal/infrastructure/postgres"
	httpRouter "github.com/tecniservice/bitacoras-api/internal/interfaces/http"
	"github.com/tecniservice/bitacoras-api/pkg/config"
	"github.com/tecniservice/bitacoras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	firmaRepo := postgres.NewFirmaRepository(pool)
	bitacoraRepo := postgres.NewBitacoraRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	configRepo := postgres.NewConfiguracionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Mailer SMTP: opcional, solo si SMTP_HOST está configurado.
	var mailer ports.Mailer
	if m := email.NewSMTPMailer(cfg.SMTP); m != nil {
		mailer = m
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	firmaUC := appfirma.NewFirmaUseCase(firmaRepo, mailer, log, cfg.App.BaseURL)
	bitacoraUC := appbitacora.NewBitacoraUseCase(txRunner, bitacoraRepo)
	cotizadorUC := facturacion.NewCotizadorUseCase(configRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)

	// Siembra del usuario maestro (idempotente: no hace nada si ya existe).
	if err := authUC.SeedMaster(ctx, cfg.Master.Email, cfg.Master.Password); err != nil {
		log.Error().Err(err).Msg("siembra del usuario maestro")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bitácoras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		FirmaUC:       firmaUC,
		BitacoraUC:    bitacoraUC,
		CotizadorUC:   cotizadorUC,
		UsuarioUC:     usuarioUC,
		CatalogoUC:    catalogoUC,
		ClienteUC:     clienteUC,
		JWTSecret:     cfg.JWT.Secret,
		SessionCookie: cfg.JWT.CookieName,
		JWTExpMinutes: cfg.JWT.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
