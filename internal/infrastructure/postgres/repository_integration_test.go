//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

func setupPostgres(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "catalogo",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://test:test@%s:%s/catalogo?sslmode=disable", host, port.Port()),
		MaxConns:    10,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	require.NoError(t, postgres.Migrate(ctx, pool), "migrar dos veces no falla")
	return pool
}

func TestIntegration_Catalogo(t *testing.T) {
	ctx := context.Background()
	pool := setupPostgres(t, ctx)

	tenants := postgres.NewTenantRepository(pool)
	admins := postgres.NewAdminRepository(pool)
	products := postgres.NewProductRepository(pool)
	variants := postgres.NewVariantRepository(pool)

	acme := &entity.Tenant{Slug: "acme", Name: "Acme", Active: true}
	globex := &entity.Tenant{Slug: "globex", Name: "Globex", Active: true}
	require.NoError(t, tenants.Create(ctx, acme))
	require.NoError(t, tenants.Create(ctx, globex))

	t.Run("tenants y admins", func(t *testing.T) {
		err := tenants.Create(ctx, &entity.Tenant{Slug: "acme", Name: "Otra"})
		assert.ErrorIs(t, err, domain.ErrTenantSlugTaken)

		require.NoError(t, admins.Create(ctx, &entity.Admin{TenantID: acme.ID, Username: "admin1", PasswordHash: "x", Active: true}))
		require.NoError(t, admins.Create(ctx, &entity.Admin{TenantID: globex.ID, Username: "admin1", PasswordHash: "y", Active: true}))
		err = admins.Create(ctx, &entity.Admin{TenantID: acme.ID, Username: "admin1", PasswordHash: "z"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)

		a, err := admins.FindActiveByUsernameAndTenant(ctx, "admin1", globex.ID)
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, "y", a.PasswordHash)

		require.NoError(t, admins.SetActive(ctx, "admin1", globex.ID, false))
		a, err = admins.FindActiveByUsernameAndTenant(ctx, "admin1", globex.ID)
		require.NoError(t, err)
		assert.Nil(t, a)

		assert.ErrorIs(t, admins.SetActive(ctx, "nadie", acme.ID, false), domain.ErrNotFound)
	})

	uc := catalog.NewProductUseCase(products, postgres.NewTxRunner(pool), nil)
	in := dto.ProductRequest{Name: "Rice Bag", Price: decimal.RequireFromString("12.555"), Unit: "bolsa"}

	t.Run("productos", func(t *testing.T) {
		p, err := uc.Create(ctx, acme.ID, in)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("rice_bag_%d_%d", acme.ID, p.ID), p.ImageSlug)

		stored, err := products.GetByIDAndTenant(ctx, p.ID, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ImageSlug, stored.ImageSlug)
		assert.True(t, decimal.RequireFromString("12.555").Equal(stored.Price))

		other, err := products.GetByIDAndTenant(ctx, p.ID, globex.ID)
		require.NoError(t, err)
		assert.Nil(t, other)

		_, err = uc.Create(ctx, acme.ID, in)
		assert.ErrorIs(t, err, domain.ErrConflict)

		require.NoError(t, uc.Delete(ctx, p.ID, acme.ID))
		_, err = uc.Create(ctx, acme.ID, in)
		assert.ErrorIs(t, err, domain.ErrConflict, "inactivo sigue reservando el nombre")

		list, err := products.ListByTenant(ctx, acme.ID, repository.ProductFilter{ActiveOnly: true})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("creación concurrente", func(t *testing.T) {
		concurrent := in
		concurrent.Name = "Concurrente"
		var wg sync.WaitGroup
		errs := make([]error, 6)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.Create(ctx, acme.ID, concurrent)
			}(i)
		}
		wg.Wait()

		var ok int
		for _, err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.True(t, errors.Is(err, domain.ErrConflict), "error inesperado: %v", err)
		}
		assert.Equal(t, 1, ok)
	})

	t.Run("variantes", func(t *testing.T) {
		name := in
		name.Name = "Frijol"
		p, err := uc.Create(ctx, acme.ID, name)
		require.NoError(t, err)

		v := &entity.ProductVariant{ProductID: p.ID, TenantID: globex.ID, QuantityValue: decimal.NewFromInt(5), QuantityUnit: "kg", Active: true}
		assert.ErrorIs(t, variants.Create(ctx, v), domain.ErrProductNotFound, "la FK compuesta impide cruzar tenants")

		v.TenantID = acme.ID
		require.NoError(t, variants.Create(ctx, v))

		list, err := variants.ListByProductAndTenant(ctx, p.ID, acme.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, decimal.NewFromInt(5).Equal(list[0].QuantityValue))

		require.NoError(t, variants.SoftDelete(ctx, v.ID, acme.ID))
		assert.ErrorIs(t, variants.SoftDelete(ctx, v.ID, globex.ID), domain.ErrNotFound)
	})
}
