package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/tenant"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/instrumented"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Catalogo-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/jhoicas/Catalogo-api/pkg/metrics"
)

// storage agrupa los repositorios del catálogo según el driver configurado.
type storage struct {
	tenants  repository.TenantRepository
	admins   repository.AdminRepository
	products repository.ProductRepository
	variants repository.VariantRepository
	tx       catalog.TxRunner
	close    func()
}

// @title        Catálogo API
// @version      1.0
// @description  API de catálogo multi-tenant: productos, variantes y sesiones de administradores.
// @host         localhost:8080
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	m := metrics.New(cfg.Metrics.Namespace)

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	sessions, closeSessions, err := openSessions(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacén de sesiones")
	}
	defer closeSessions()

	authUC, err := auth.NewAuthUseCase(st.admins, instrumented.NewSessionRepository(sessions, m), auth.SessionConfig{
		TTL: cfg.Session.TTL,
	}, m)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar autenticación")
	}
	guard := auth.NewAccessGuard(authUC, m)
	productUC := catalog.NewProductUseCase(st.products, st.tx, m)
	variantUC := catalog.NewVariantUseCase(st.products, st.variants, m)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))
	app.Use(httpRouter.Metrics(m))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.SwaggerFile,
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Directory: tenant.NewDirectory(st.tenants),
		AuthUC:    authUC,
		Guard:     guard,
		ProductUC: productUC,
		VariantUC: variantUC,
		Metrics:   m,
		Cookie: httpRouter.SessionCookieConfig{
			Name:   cfg.Session.CookieName,
			Secret: cfg.Session.Secret,
			Issuer: cfg.Session.Issuer,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.CookieSecure,
		},
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

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	if cfg.App.StorageDriver == "memory" {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos no persisten entre reinicios")
		s := memory.NewStore()
		return &storage{
			tenants:  s.Tenants(),
			admins:   s.Admins(),
			products: s.Products(),
			variants: s.Variants(),
			tx:       s,
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return &storage{
		tenants:  postgres.NewTenantRepository(pool),
		admins:   postgres.NewAdminRepository(pool),
		products: postgres.NewProductRepository(pool),
		variants: postgres.NewVariantRepository(pool),
		tx:       postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}

func openSessions(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.SessionRepository, func(), error) {
	if cfg.Session.Store == "memory" {
		log.Warn().Msg("SESSION_STORE=memory: las sesiones no se comparten entre instancias")
		return memory.NewSessionRepository(), func() {}, nil
	}

	client, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar cliente Redis")
		}
	}
	return infraredis.NewSessionRepository(client, cfg.App.Name), closeFn, nil
}
