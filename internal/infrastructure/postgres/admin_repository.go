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

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de persistencia para admins. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

const adminColumns = `id, tenant_id, username, password_hash, active, created_at, updated_at`

func scanAdmin(row pgx.Row) (*entity.Admin, error) {
	var a entity.Admin
	if err := row.Scan(&a.ID, &a.TenantID, &a.Username, &a.PasswordHash, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste el admin (password ya hasheado) y asigna ID y timestamps.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (tenant_id, username, password_hash, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, admin.TenantID, admin.Username, admin.PasswordHash, admin.Active).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	return mapError("insert admin", err)
}

// FindActiveByUsernameAndTenant solo considera admins activos. (nil, nil) si no hay coincidencia.
func (r *AdminRepo) FindActiveByUsernameAndTenant(ctx context.Context, username string, tenantID int64) (*entity.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1 AND tenant_id = $2 AND active`
	a, err := scanAdmin(r.q.QueryRow(ctx, query, username, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find admin by username: %w", err)
	}
	return a, nil
}

// GetByIDAndTenant obtiene un admin (activo o no) por id dentro del tenant.
func (r *AdminRepo) GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1 AND tenant_id = $2`
	a, err := scanAdmin(r.q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return a, nil
}

// SetActive activa o desactiva al admin. ErrAdminNotFound si no existe en el tenant.
func (r *AdminRepo) SetActive(ctx context.Context, username string, tenantID int64, active bool) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE admins SET active = $3, updated_at = now() WHERE username = $1 AND tenant_id = $2`,
		username, tenantID, active)
	if err != nil {
		return mapError("update admin active", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}
