package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func newDeps() *Deps {
	st := memory.NewStore()
	return &Deps{Tenants: st.Tenants(), Admins: st.Admins()}
}

func TestTenantCmd_Crea(t *testing.T) {
	ctx := context.Background()
	deps := newDeps()

	require.NoError(t, (&TenantCmd{Slug: " acme ", Name: "Acme Co"}).Run(ctx, deps))

	got, err := deps.Tenants.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Active)

	err = (&TenantCmd{Slug: "acme", Name: "Otra"}).Run(ctx, deps)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAdminCmd_GuardaHashBcrypt(t *testing.T) {
	ctx := context.Background()
	deps := newDeps()
	require.NoError(t, (&TenantCmd{Slug: "acme", Name: "Acme Co"}).Run(ctx, deps))

	require.NoError(t, (&AdminCmd{Tenant: "acme", Username: "admin1", Password: "secret"}).Run(ctx, deps))

	tn, err := deps.Tenants.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	a, err := deps.Admins.FindActiveByUsernameAndTenant(ctx, "admin1", tn.ID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NotEqual(t, "secret", a.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret")))
}

func TestAdminCmd_TenantInexistente(t *testing.T) {
	err := (&AdminCmd{Tenant: "nadie", Username: "admin1", Password: "x"}).Run(context.Background(), newDeps())
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)
}

func TestStatusCmds(t *testing.T) {
	ctx := context.Background()
	deps := newDeps()
	require.NoError(t, (&TenantCmd{Slug: "acme", Name: "Acme Co"}).Run(ctx, deps))
	require.NoError(t, (&AdminCmd{Tenant: "acme", Username: "admin1", Password: "secret"}).Run(ctx, deps))

	require.NoError(t, (&AdminStatusCmd{Tenant: "acme", Username: "admin1", Active: false}).Run(ctx, deps))
	tn, err := deps.Tenants.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	a, err := deps.Admins.FindActiveByUsernameAndTenant(ctx, "admin1", tn.ID)
	require.NoError(t, err)
	assert.Nil(t, a, "un admin desactivado no aparece entre los activos")

	require.NoError(t, (&TenantStatusCmd{Slug: "acme", Active: false}).Run(ctx, deps))
	tn, err = deps.Tenants.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, tn.Active)
}
