package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/metrics"
)

// PrincipalSource entrega el principal ligado a una sesión (AuthUseCase lo implementa).
type PrincipalSource interface {
	CurrentPrincipal(ctx context.Context, sessionID string) (*entity.Principal, error)
}

// AccessGuard decide si la sesión puede operar sobre el tenant de la ruta.
type AccessGuard struct {
	principals PrincipalSource
	recorder   Recorder
}

// NewAccessGuard construye el guard. recorder puede ser nil.
func NewAccessGuard(principals PrincipalSource, recorder Recorder) *AccessGuard {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &AccessGuard{principals: principals, recorder: recorder}
}

// Authorize devuelve el id del tenant autorizado. Sin principal: ErrUnauthenticated.
// Principal de otro tenant: ErrTenantMismatch.
func (g *AccessGuard) Authorize(ctx context.Context, sessionID string, tenant *entity.Tenant) (int64, error) {
	principal, err := g.principals.CurrentPrincipal(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if principal == nil {
		g.recorder.AccessDenied(metrics.DenyUnauthenticated)
		return 0, domain.ErrUnauthenticated
	}
	if principal.TenantID != tenant.ID {
		g.recorder.AccessDenied(metrics.DenyTenantMismatch)
		log.Ctx(ctx).Warn().
			Int64("admin_id", principal.AdminID).
			Int64("admin_tenant_id", principal.TenantID).
			Int64("tenant_id", tenant.ID).
			Msg("acceso denegado: tenant distinto al de la sesión")
		return 0, domain.ErrTenantMismatch
	}
	return tenant.ID, nil
}
