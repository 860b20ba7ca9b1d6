package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación en memoria de AdminRepository.
type AdminRepo struct {
	s *Store
}

// Create asigna ID. ErrUsernameTaken si (username, tenant) ya existe.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	return r.s.write(ctx, false, func() error {
		if _, ok := r.s.tenants[admin.TenantID]; !ok {
			return domain.ErrTenantNotFound
		}
		for _, a := range r.s.admins {
			if a.Username == admin.Username && a.TenantID == admin.TenantID {
				return domain.ErrUsernameTaken
			}
		}
		r.s.adminSeq++
		admin.ID = r.s.adminSeq
		r.s.admins[admin.ID] = *admin
		return nil
	})
}

func (r *AdminRepo) FindActiveByUsernameAndTenant(ctx context.Context, username string, tenantID int64) (*entity.Admin, error) {
	var out *entity.Admin
	err := r.s.read(ctx, false, func() error {
		for _, a := range r.s.admins {
			if a.Active && a.Username == username && a.TenantID == tenantID {
				clone := a
				out = &clone
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *AdminRepo) GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.Admin, error) {
	var out *entity.Admin
	err := r.s.read(ctx, false, func() error {
		if a, ok := r.s.admins[id]; ok && a.TenantID == tenantID {
			out = &a
		}
		return nil
	})
	return out, err
}

func (r *AdminRepo) SetActive(ctx context.Context, username string, tenantID int64, active bool) error {
	return r.s.write(ctx, false, func() error {
		for id, a := range r.s.admins {
			if a.Username == username && a.TenantID == tenantID {
				a.Active = active
				a.UpdatedAt = time.Now()
				r.s.admins[id] = a
				return nil
			}
		}
		return domain.ErrAdminNotFound
	})
}
