package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nombre de producto", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraintProductName}, domain.ErrProductNameTaken},
		{"slug de tenant", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraintTenantSlug}, domain.ErrTenantSlugTaken},
		{"username", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraintAdminUsername}, domain.ErrUsernameTaken},
		{"unicidad desconocida", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "otra"}, domain.ErrConflict},
		{"variante de otro tenant", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: constraintVariantProduct}, domain.ErrProductNotFound},
		{"tenant inexistente", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: constraintAdminTenant}, domain.ErrTenantNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError("op", tc.err), tc.want)
		})
	}

	assert.NoError(t, mapError("op", nil))

	plain := errors.New("conexión cerrada")
	got := mapError("insert product", plain)
	assert.ErrorIs(t, got, plain)
	assert.Contains(t, got.Error(), "insert product")
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].version)
	assert.Contains(t, migrations[0].content, "products_name_tenant_key")
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].version, migrations[i].version)
	}
}
