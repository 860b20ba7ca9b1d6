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

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL.
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste el tenant y asigna ID y timestamps.
func (r *TenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (slug, name, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, tenant.Slug, tenant.Name, tenant.Active).
		Scan(&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt)
	return mapError("insert tenant", err)
}

// GetBySlug obtiene un tenant por slug. (nil, nil) si no existe.
func (r *TenantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	query := `SELECT id, slug, name, active, created_at, updated_at FROM tenants WHERE slug = $1`
	var t entity.Tenant
	err := r.q.QueryRow(ctx, query, slug).Scan(&t.ID, &t.Slug, &t.Name, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}
	return &t, nil
}

// SetActive activa o desactiva el tenant. ErrTenantNotFound si el slug no existe.
func (r *TenantRepo) SetActive(ctx context.Context, slug string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE tenants SET active = $2, updated_at = now() WHERE slug = $1`, slug, active)
	if err != nil {
		return mapError("update tenant active", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}
