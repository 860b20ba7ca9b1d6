package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Querier abstrae pool y transacción para que los repositorios funcionen con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Nombres de constraints del esquema (migrations/001_init.sql).
const (
	constraintTenantSlug     = "tenants_slug_key"
	constraintAdminUsername  = "admins_username_tenant_key"
	constraintAdminTenant    = "admins_tenant_id_fkey"
	constraintProductName    = "products_name_tenant_key"
	constraintProductTenant  = "products_tenant_id_fkey"
	constraintVariantProduct = "product_variants_product_tenant_fkey"
)

// mapError traduce violaciones de constraints conocidas a errores de dominio.
// Cualquier otro error se devuelve envuelto con op.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintProductName:
			return domain.ErrProductNameTaken
		case constraintTenantSlug:
			return domain.ErrTenantSlugTaken
		case constraintAdminUsername:
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("%s: violación de unicidad %s: %w", op, pgErr.ConstraintName, domain.ErrConflict)
	case pgerrcode.ForeignKeyViolation:
		switch pgErr.ConstraintName {
		case constraintVariantProduct:
			return domain.ErrProductNotFound
		case constraintAdminTenant, constraintProductTenant:
			return domain.ErrTenantNotFound
		}
		return fmt.Errorf("%s: violación de FK %s: %w", op, pgErr.ConstraintName, domain.ErrNotFound)
	case pgerrcode.QueryCanceled:
		return fmt.Errorf("%s: consulta cancelada: %w", op, err)
	}
	return fmt.Errorf("%s: postgres [%s] %s: %w", op, pgErr.Code, pgErr.Message, err)
}
