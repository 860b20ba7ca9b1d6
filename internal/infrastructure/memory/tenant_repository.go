package memory

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación en memoria de TenantRepository.
type TenantRepo struct {
	s *Store
}

// Create asigna ID. ErrTenantSlugTaken si el slug ya existe.
func (r *TenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	return r.s.write(ctx, false, func() error {
		for _, t := range r.s.tenants {
			if t.Slug == tenant.Slug {
				return domain.ErrTenantSlugTaken
			}
		}
		r.s.tenantSeq++
		tenant.ID = r.s.tenantSeq
		r.s.tenants[tenant.ID] = *tenant
		return nil
	})
}

func (r *TenantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	var out *entity.Tenant
	err := r.s.read(ctx, false, func() error {
		for _, t := range r.s.tenants {
			if t.Slug == slug {
				clone := t
				out = &clone
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *TenantRepo) SetActive(ctx context.Context, slug string, active bool) error {
	return r.s.write(ctx, false, func() error {
		for id, t := range r.s.tenants {
			if t.Slug == slug {
				t.Active = active
				r.s.tenants[id] = t
				return nil
			}
		}
		return domain.ErrTenantNotFound
	})
}
