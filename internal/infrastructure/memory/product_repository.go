package memory

import (
	"context"
	"slices"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository (usable dentro o fuera de RunCatalog).
type ProductRepo struct {
	s    *Store
	inTx bool
}

// nameTaken informa si otro producto del tenant ya usa el nombre (activo o no). Requiere el lock.
func (r *ProductRepo) nameTaken(name string, tenantID, exceptID int64) bool {
	for id, p := range r.s.products {
		if id != exceptID && p.TenantID == tenantID && p.Name == name {
			return true
		}
	}
	return false
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return r.s.write(ctx, r.inTx, func() error {
		if r.nameTaken(product.Name, product.TenantID, 0) {
			return domain.ErrProductNameTaken
		}
		r.s.productSeq++
		product.ID = r.s.productSeq
		r.s.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.read(ctx, r.inTx, func() error {
		if p, ok := r.s.products[id]; ok && p.TenantID == tenantID {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) ExistsByNameAndTenant(ctx context.Context, name string, tenantID int64) (bool, error) {
	var exists bool
	err := r.s.read(ctx, r.inTx, func() error {
		exists = r.nameTaken(name, tenantID, 0)
		return nil
	})
	return exists, err
}

func (r *ProductRepo) ListByTenant(ctx context.Context, tenantID int64, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.s.read(ctx, r.inTx, func() error {
		for _, p := range r.s.products {
			if p.TenantID != tenantID || (filter.ActiveOnly && !p.Active) {
				continue
			}
			out = append(out, &p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b *entity.Product) int { return compareID(a.ID, b.ID) })
	return paginate(out, filter.Limit, filter.Offset), nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return r.s.write(ctx, r.inTx, func() error {
		current, ok := r.s.products[product.ID]
		if !ok || current.TenantID != product.TenantID {
			return domain.ErrProductNotFound
		}
		if r.nameTaken(product.Name, product.TenantID, product.ID) {
			return domain.ErrProductNameTaken
		}
		updated := *product
		updated.CreatedAt = current.CreatedAt
		r.s.products[product.ID] = updated
		return nil
	})
}

func (r *ProductRepo) UpdateImageSlug(ctx context.Context, id, tenantID int64, imageSlug string) error {
	return r.s.write(ctx, r.inTx, func() error {
		p, ok := r.s.products[id]
		if !ok || p.TenantID != tenantID {
			return domain.ErrProductNotFound
		}
		p.ImageSlug = imageSlug
		r.s.products[id] = p
		return nil
	})
}

func (r *ProductRepo) SoftDelete(ctx context.Context, id, tenantID int64) error {
	return r.s.write(ctx, r.inTx, func() error {
		p, ok := r.s.products[id]
		if !ok || p.TenantID != tenantID {
			return domain.ErrProductNotFound
		}
		p.Active = false
		p.UpdatedAt = time.Now()
		r.s.products[id] = p
		return nil
	})
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
