package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/tenant"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
	"github.com/jhoicas/Catalogo-api/pkg/metrics"
)

// Locals keys en Fiber.
const (
	LocalSessionID = "session_id"
	LocalTenant    = "tenant"
	LocalTenantID  = "tenant_id"
)

// SessionCookieConfig parámetros de la cookie que transporta la sesión.
type SessionCookieConfig struct {
	Name   string
	Secret string
	Issuer string
	TTL    time.Duration
	Secure bool
}

// SessionMiddleware lee la cookie de sesión y deja el session id en c.Locals.
// Una cookie ausente, manipulada o vencida equivale a una petición anónima.
func SessionMiddleware(cfg SessionCookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cfg.Name); token != "" {
			if sid, err := jwt.Parse(cfg.Secret, token); err == nil {
				c.Locals(LocalSessionID, sid)
			} else {
				log.Ctx(c.UserContext()).Debug().Err(err).Msg("cookie de sesión inválida, se trata como anónima")
			}
		}
		return c.Next()
	}
}

// ResolveTenant resuelve :tenantSlug una sola vez por petición y guarda el tenant en c.Locals.
// El logger del contexto queda etiquetado con el tenant.
func ResolveTenant(dir *tenant.Directory, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := dir.Resolve(c.UserContext(), c.Params("tenantSlug"))
		if err != nil {
			if errors.Is(err, domain.ErrTenantInactive) {
				m.AccessDenied(metrics.DenyTenantInactive)
			}
			return respondError(c, err)
		}
		c.Locals(LocalTenant, t)
		logger := log.Ctx(c.UserContext()).With().Str("tenant", t.Slug).Int64("tenant_id", t.ID).Logger()
		c.SetUserContext(logger.WithContext(c.UserContext()))
		return c.Next()
	}
}

// RequireAdmin exige una sesión cuyo principal pertenezca al tenant de la ruta.
// Debe ir después de ResolveTenant. Deja el tenant id autorizado en c.Locals.
func RequireAdmin(guard *auth.AccessGuard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, err := guard.Authorize(c.UserContext(), GetSessionID(c), GetTenant(c))
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalTenantID, tenantID)
		return c.Next()
	}
}

// Metrics registra cada petición por método, ruta registrada y status.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		m.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

// GetSessionID devuelve el session id de la cookie ("" si la petición es anónima).
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}

// GetTenant devuelve el tenant resuelto por ResolveTenant.
func GetTenant(c *fiber.Ctx) *entity.Tenant {
	t, _ := c.Locals(LocalTenant).(*entity.Tenant)
	return t
}

// GetTenantID devuelve el tenant id autorizado por RequireAdmin (0 si no pasó por el guard).
func GetTenantID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalTenantID).(int64)
	return id
}
