package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure. Los Get devuelven (nil, nil) si no existe.
type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)
	SetActive(ctx context.Context, slug string, active bool) error
}
