package memory

import (
	"context"
	"slices"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación en memoria de VariantRepository.
type VariantRepo struct {
	s    *Store
	inTx bool
}

// Create asigna ID. El producto debe existir con el mismo tenant (equivale a la FK compuesta).
func (r *VariantRepo) Create(ctx context.Context, variant *entity.ProductVariant) error {
	return r.s.write(ctx, r.inTx, func() error {
		p, ok := r.s.products[variant.ProductID]
		if !ok || p.TenantID != variant.TenantID {
			return domain.ErrProductNotFound
		}
		r.s.variantSeq++
		variant.ID = r.s.variantSeq
		r.s.variants[variant.ID] = *variant
		return nil
	})
}

func (r *VariantRepo) GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.ProductVariant, error) {
	var out *entity.ProductVariant
	err := r.s.read(ctx, r.inTx, func() error {
		if v, ok := r.s.variants[id]; ok && v.TenantID == tenantID {
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *VariantRepo) ListByProductAndTenant(ctx context.Context, productID, tenantID int64) ([]*entity.ProductVariant, error) {
	var out []*entity.ProductVariant
	err := r.s.read(ctx, r.inTx, func() error {
		for _, v := range r.s.variants {
			if v.ProductID == productID && v.TenantID == tenantID {
				out = append(out, &v)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b *entity.ProductVariant) int { return compareID(a.ID, b.ID) })
	return out, nil
}

// Update no permite mover la variante a otro producto ni a otro tenant.
func (r *VariantRepo) Update(ctx context.Context, variant *entity.ProductVariant) error {
	return r.s.write(ctx, r.inTx, func() error {
		current, ok := r.s.variants[variant.ID]
		if !ok || current.TenantID != variant.TenantID {
			return domain.ErrVariantNotFound
		}
		updated := *variant
		updated.ProductID = current.ProductID
		updated.CreatedAt = current.CreatedAt
		r.s.variants[variant.ID] = updated
		return nil
	})
}

func (r *VariantRepo) SoftDelete(ctx context.Context, id, tenantID int64) error {
	return r.s.write(ctx, r.inTx, func() error {
		v, ok := r.s.variants[id]
		if !ok || v.TenantID != tenantID {
			return domain.ErrVariantNotFound
		}
		v.Active = false
		v.UpdatedAt = time.Now()
		r.s.variants[id] = v
		return nil
	})
}
