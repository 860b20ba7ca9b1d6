package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// VariantRepository define el puerto de persistencia para ProductVariant.
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.ProductVariant) error
	GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.ProductVariant, error)
	ListByProductAndTenant(ctx context.Context, productID, tenantID int64) ([]*entity.ProductVariant, error)
	Update(ctx context.Context, variant *entity.ProductVariant) error
	SoftDelete(ctx context.Context, id, tenantID int64) error
}
