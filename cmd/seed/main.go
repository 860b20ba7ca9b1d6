// seed aprovisiona tenants y admins fuera de banda contra la base PostgreSQL configurada.
//
// Uso:
//
//	go run ./cmd/seed tenant --slug acme --name "Acme Co"
//	go run ./cmd/seed admin --tenant acme --username admin1 --password secret
//	go run ./cmd/seed tenant-status --slug acme --active=false
//	go run ./cmd/seed admin-status --tenant acme --username admin1 --active=false
package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

var cli struct {
	Tenant       TenantCmd       `cmd:"" help:"Crear un tenant"`
	Admin        AdminCmd        `cmd:"" help:"Crear un admin en un tenant"`
	TenantStatus TenantStatusCmd `cmd:"" name:"tenant-status" help:"Activar o desactivar un tenant"`
	AdminStatus  AdminStatusCmd  `cmd:"" name:"admin-status" help:"Activar o desactivar un admin"`
}

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("seed"),
		kong.Description("Aprovisionamiento de tenants y admins del catálogo."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	cmd.FatalIfErrorf(err)
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	cmd.FatalIfErrorf(err)
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		cmd.FatalIfErrorf(postgres.Migrate(ctx, pool))
	}

	deps := &Deps{
		Tenants: postgres.NewTenantRepository(pool),
		Admins:  postgres.NewAdminRepository(pool),
	}
	cmd.BindTo(ctx, (*context.Context)(nil))
	err = cmd.Run(deps)
	if err != nil {
		log.Error().Err(err).Str("command", cmd.Command()).Msg("seed fallido")
	}
	cmd.FatalIfErrorf(err)
}
