package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

func newProduct(tenantID int64, name string) *entity.Product {
	return &entity.Product{TenantID: tenantID, Name: name, Price: decimal.NewFromInt(10), Active: true}
}

func TestStore_RunCatalog_RollbackAnteError(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := st.RunCatalog(ctx, func(products repository.ProductRepository, _ repository.VariantRepository) error {
		require.NoError(t, products.Create(ctx, newProduct(1, "Arroz")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	items, err := st.Products().ListByTenant(ctx, 1, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, items, "el rollback descarta el producto creado")

	// la secuencia no retrocede
	p := newProduct(1, "Arroz")
	require.NoError(t, st.Products().Create(ctx, p))
	assert.Equal(t, int64(2), p.ID)
}

func TestStore_RunCatalog_Commit(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	p := newProduct(1, "Arroz")

	err := st.RunCatalog(ctx, func(products repository.ProductRepository, _ repository.VariantRepository) error {
		if err := products.Create(ctx, p); err != nil {
			return err
		}
		return products.UpdateImageSlug(ctx, p.ID, 1, "arroz_1_1")
	})
	require.NoError(t, err)

	got, err := st.Products().GetByIDAndTenant(ctx, p.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "arroz_1_1", got.ImageSlug)
}

func TestProductRepo_UnicidadPorTenant(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	repo := st.Products()

	require.NoError(t, repo.Create(ctx, newProduct(1, "Arroz")))
	require.NoError(t, repo.Create(ctx, newProduct(2, "Arroz")), "otro tenant puede usar el mismo nombre")

	err := repo.Create(ctx, newProduct(1, "Arroz"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	// un producto desactivado sigue reservando el nombre
	require.NoError(t, repo.SoftDelete(ctx, 1, 1))
	err = repo.Create(ctx, newProduct(1, "Arroz"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductRepo_AisladoPorTenant(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	repo := st.Products()

	p := newProduct(1, "Arroz")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByIDAndTenant(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.SoftDelete(ctx, p.ID, 2), domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateImageSlug(ctx, p.ID, 2, "x"), domain.ErrNotFound)
}

func TestProductRepo_ListarOrdenadoYPaginado(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	repo := st.Products()

	for _, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, repo.Create(ctx, newProduct(1, name)))
	}
	require.NoError(t, repo.SoftDelete(ctx, 2, 1))

	all, err := repo.ListByTenant(ctx, 1, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i, p := range all {
		assert.Equal(t, int64(i+1), p.ID)
	}

	active, err := repo.ListByTenant(ctx, 1, repository.ProductFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 3)

	page, err := repo.ListByTenant(ctx, 1, repository.ProductFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(2), page[0].ID)

	empty, err := repo.ListByTenant(ctx, 1, repository.ProductFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVariantRepo_RequiereProductoDelMismoTenant(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	p := newProduct(1, "Arroz")
	require.NoError(t, st.Products().Create(ctx, p))

	v := &entity.ProductVariant{ProductID: p.ID, TenantID: 2, QuantityUnit: "kg"}
	assert.ErrorIs(t, st.Variants().Create(ctx, v), domain.ErrNotFound)

	v.TenantID = 1
	require.NoError(t, st.Variants().Create(ctx, v))

	v.ProductID = 99
	require.NoError(t, st.Variants().Update(ctx, v))
	got, err := st.Variants().GetByIDAndTenant(ctx, v.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ProductID, "una variante no cambia de producto")
}

func TestStore_ContextoCancelado(t *testing.T) {
	st := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.Products().ListByTenant(ctx, 1, repository.ProductFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionRepo_DescartaVencidas(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Session{ID: "s1", ExpiresAt: now.Add(time.Minute)}))
	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)

	now = now.Add(time.Minute)
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, repo.Len())
}
