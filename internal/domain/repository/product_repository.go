package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductFilter acota un listado. El valor cero devuelve todos los productos del tenant.
type ProductFilter struct {
	ActiveOnly bool
	Limit      int // 0 = sin límite
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Toda consulta va acotada por tenant; (id, tenantID) que no coincide se comporta como inexistente.
type ProductRepository interface {
	// Create asigna product.ID. Devuelve domain.ErrProductNameTaken ante violación de (name, tenant_id).
	Create(ctx context.Context, product *entity.Product) error
	GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.Product, error)
	ExistsByNameAndTenant(ctx context.Context, name string, tenantID int64) (bool, error)
	ListByTenant(ctx context.Context, tenantID int64, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateImageSlug(ctx context.Context, id, tenantID int64, imageSlug string) error
	SoftDelete(ctx context.Context, id, tenantID int64) error
}
