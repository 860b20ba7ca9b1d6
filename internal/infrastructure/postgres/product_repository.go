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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, tenant_id, name, category, description, price, unit, active, image_slug, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.Category, &p.Description, &p.Price,
		&p.Unit, &p.Active, &p.ImageSlug, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto y asigna su ID. ErrProductNameTaken ante products_name_tenant_key.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (tenant_id, name, category, description, price, unit, active, image_slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.TenantID, product.Name, product.Category, product.Description, product.Price,
		product.Unit, product.Active, product.ImageSlug, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	return mapError("insert product", err)
}

// GetByIDAndTenant obtiene un producto del tenant. (nil, nil) si no existe bajo ese tenant.
func (r *ProductRepo) GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND tenant_id = $2`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ExistsByNameAndTenant considera también productos inactivos.
func (r *ProductRepo) ExistsByNameAndTenant(ctx context.Context, name string, tenantID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE name = $1 AND tenant_id = $2)`,
		name, tenantID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product by name: %w", err)
	}
	return exists, nil
}

// ListByTenant lista los productos del tenant ordenados por id.
func (r *ProductRepo) ListByTenant(ctx context.Context, tenantID int64, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1`
	args := []any{tenantID}
	if filter.ActiveOnly {
		query += ` AND active`
	}
	query += ` ORDER BY id`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Update sobrescribe los campos editables. ErrProductNotFound si no existe bajo ese tenant.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, category = $4, description = $5, price = $6, unit = $7, active = $8,
		    image_slug = $9, updated_at = $10
		WHERE id = $1 AND tenant_id = $2`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.TenantID, product.Name, product.Category, product.Description,
		product.Price, product.Unit, product.Active, product.ImageSlug, product.UpdatedAt,
	)
	if err != nil {
		return mapError("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// UpdateImageSlug fija el slug de imagen una vez asignado el ID.
func (r *ProductRepo) UpdateImageSlug(ctx context.Context, id, tenantID int64, imageSlug string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET image_slug = $3 WHERE id = $1 AND tenant_id = $2`,
		id, tenantID, imageSlug)
	if err != nil {
		return mapError("update product image slug", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// SoftDelete marca el producto como inactivo.
func (r *ProductRepo) SoftDelete(ctx context.Context, id, tenantID int64) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET active = FALSE, updated_at = now() WHERE id = $1 AND tenant_id = $2`,
		id, tenantID)
	if err != nil {
		return mapError("soft delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
