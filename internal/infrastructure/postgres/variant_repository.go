package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación del puerto VariantRepository sobre PostgreSQL.
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador de persistencia para variantes. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, product_id, tenant_id, quantity_value, quantity_unit, price, active, created_at, updated_at`

func scanVariant(row pgx.Row) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	err := row.Scan(&v.ID, &v.ProductID, &v.TenantID, &v.QuantityValue, &v.QuantityUnit,
		&v.Price, &v.Active, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste la variante. La FK compuesta rechaza un producto de otro tenant (ErrProductNotFound).
func (r *VariantRepo) Create(ctx context.Context, variant *entity.ProductVariant) error {
	query := `
		INSERT INTO product_variants (product_id, tenant_id, quantity_value, quantity_unit, price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		variant.ProductID, variant.TenantID, variant.QuantityValue, variant.QuantityUnit,
		variant.Price, variant.Active, variant.CreatedAt, variant.UpdatedAt,
	).Scan(&variant.ID)
	return mapError("insert variant", err)
}

func (r *VariantRepo) GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE id = $1 AND tenant_id = $2`
	v, err := scanVariant(r.q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return v, nil
}

func (r *VariantRepo) ListByProductAndTenant(ctx context.Context, productID, tenantID int64) ([]*entity.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE product_id = $1 AND tenant_id = $2 ORDER BY id`
	rows, err := r.q.Query(ctx, query, productID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductVariant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	return list, nil
}

// Update no cambia product_id ni tenant_id.
func (r *VariantRepo) Update(ctx context.Context, variant *entity.ProductVariant) error {
	query := `
		UPDATE product_variants
		SET quantity_value = $3, quantity_unit = $4, price = $5, active = $6, updated_at = $7
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(ctx, query,
		variant.ID, variant.TenantID, variant.QuantityValue, variant.QuantityUnit,
		variant.Price, variant.Active, variant.UpdatedAt,
	)
	if err != nil {
		return mapError("update variant", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVariantNotFound
	}
	return nil
}

func (r *VariantRepo) SoftDelete(ctx context.Context, id, tenantID int64) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE product_variants SET active = FALSE, updated_at = now() WHERE id = $1 AND tenant_id = $2`,
		id, tenantID)
	if err != nil {
		return mapError("soft delete variant", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVariantNotFound
	}
	return nil
}
