// seed_master siembra el usuario maestro (rol admin) en la base de datos.
// Es idempotente: si el email configurado ya existe no hace nada.
//
// Uso: MASTER_EMAIL=... MASTER_PASSWORD=... go run ./cmd/seed_master
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tecniservice/bitacoras-api/internal/application/auth"
	"github.com/tecniservice/bitacoras-api/internal/infrastructure/postgres"
	"github.com/tecniservice/bitacoras-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Master.Email == "" || cfg.Master.Password == "" {
		fmt.Fprintln(os.Stderr, "MASTER_EMAIL y MASTER_PASSWORD son requeridos")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUsuarioRepository(pool), auth.JWTConfig{})
	if err := authUC.SeedMaster(ctx, cfg.Master.Email, cfg.Master.Password); err != nil {
		fmt.Fprintf(os.Stderr, "siembra del usuario maestro: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuario maestro asegurado: %s\n", cfg.Master.Email)
}
