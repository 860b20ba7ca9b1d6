package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Directory resuelve el slug de la ruta a un tenant activo. Sin efectos secundarios.
type Directory struct {
	repo repository.TenantRepository
}

// NewDirectory construye el directorio de tenants.
func NewDirectory(repo repository.TenantRepository) *Directory {
	return &Directory{repo: repo}
}

// Resolve devuelve ErrTenantNotFound si el slug está vacío o no existe y ErrTenantInactive si el tenant está desactivado.
func (d *Directory) Resolve(ctx context.Context, slug string) (*entity.Tenant, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrTenantNotFound
	}
	t, err := d.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolver tenant %q: %w", slug, err)
	}
	if t == nil {
		return nil, domain.ErrTenantNotFound
	}
	if !t.Active {
		return nil, domain.ErrTenantInactive
	}
	return t, nil
}
