package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/tenant"
	"github.com/jhoicas/Catalogo-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Directory *tenant.Directory
	AuthUC    *auth.AuthUseCase
	Guard     *auth.AccessGuard
	ProductUC *catalog.ProductUseCase
	VariantUC *catalog.VariantUseCase
	Metrics   *metrics.Metrics
	Cookie    SessionCookieConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Cookie))
	scoped := api.Group("/:tenantSlug")

	resolve := ResolveTenant(deps.Directory, deps.Metrics)
	admin := RequireAdmin(deps.Guard)

	// Admins
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	scoped.Post("/admins/login", resolve, authHandler.Login)
	scoped.Post("/admins/logout", authHandler.Logout)
	scoped.Get("/admins/me", resolve, admin, authHandler.Me)

	// Products (lectura pública por tenant)
	productHandler := NewProductHandler(deps.ProductUC)
	scoped.Get("/products", resolve, productHandler.List)
	scoped.Get("/products/:id", resolve, productHandler.GetByID)
	scoped.Post("/products", resolve, admin, productHandler.Create)
	scoped.Put("/products/:id", resolve, admin, productHandler.Update)
	scoped.Delete("/products/:id", resolve, admin, productHandler.Delete)

	// Variants
	variantHandler := NewVariantHandler(deps.VariantUC)
	scoped.Get("/products/:productId/variants", resolve, variantHandler.ListByProduct)
	scoped.Post("/products/:productId/variants", resolve, admin, variantHandler.Create)
	scoped.Put("/variants/:variantId", resolve, admin, variantHandler.Update)
	scoped.Delete("/variants/:variantId", resolve, admin, variantHandler.Delete)
}
