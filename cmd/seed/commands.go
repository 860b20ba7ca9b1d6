package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Deps repositorios que usan los comandos.
type Deps struct {
	Tenants repository.TenantRepository
	Admins  repository.AdminRepository
}

type TenantCmd struct {
	Slug     string `help:"Slug del tenant (clave en la URL)" required:""`
	Name     string `help:"Nombre visible" required:""`
	Inactive bool   `help:"Crear el tenant desactivado"`
}

func (c *TenantCmd) Run(ctx context.Context, deps *Deps) error {
	t := &entity.Tenant{
		Slug:   strings.TrimSpace(c.Slug),
		Name:   strings.TrimSpace(c.Name),
		Active: !c.Inactive,
	}
	if t.Slug == "" || t.Name == "" {
		return fmt.Errorf("slug y name son obligatorios")
	}
	if err := deps.Tenants.Create(ctx, t); err != nil {
		return fmt.Errorf("crear tenant %q: %w", t.Slug, err)
	}
	log.Info().Int64("tenant_id", t.ID).Str("tenant", t.Slug).Bool("active", t.Active).Msg("tenant creado")
	return nil
}

type AdminCmd struct {
	Tenant   string `help:"Slug del tenant" required:""`
	Username string `help:"Username del admin" required:""`
	Password string `help:"Password en claro (se guarda con bcrypt)" required:"" env:"SEED_ADMIN_PASSWORD"`
	Inactive bool   `help:"Crear el admin desactivado"`
}

func (c *AdminCmd) Run(ctx context.Context, deps *Deps) error {
	t, err := findTenant(ctx, deps, c.Tenant)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de password: %w", err)
	}
	a := &entity.Admin{
		TenantID:     t.ID,
		Username:     strings.TrimSpace(c.Username),
		PasswordHash: string(hash),
		Active:       !c.Inactive,
	}
	if err := deps.Admins.Create(ctx, a); err != nil {
		return fmt.Errorf("crear admin %q: %w", a.Username, err)
	}
	log.Info().Int64("tenant_id", t.ID).Int64("admin_id", a.ID).Str("username", a.Username).Msg("admin creado")
	return nil
}

type TenantStatusCmd struct {
	Slug   string `help:"Slug del tenant" required:""`
	Active bool   `help:"Nuevo estado" default:"true"`
}

func (c *TenantStatusCmd) Run(ctx context.Context, deps *Deps) error {
	if err := deps.Tenants.SetActive(ctx, c.Slug, c.Active); err != nil {
		return fmt.Errorf("actualizar tenant %q: %w", c.Slug, err)
	}
	log.Info().Str("tenant", c.Slug).Bool("active", c.Active).Msg("estado de tenant actualizado")
	return nil
}

type AdminStatusCmd struct {
	Tenant   string `help:"Slug del tenant" required:""`
	Username string `help:"Username del admin" required:""`
	Active   bool   `help:"Nuevo estado" default:"true"`
}

func (c *AdminStatusCmd) Run(ctx context.Context, deps *Deps) error {
	t, err := findTenant(ctx, deps, c.Tenant)
	if err != nil {
		return err
	}
	if err := deps.Admins.SetActive(ctx, c.Username, t.ID, c.Active); err != nil {
		return fmt.Errorf("actualizar admin %q: %w", c.Username, err)
	}
	log.Info().Int64("tenant_id", t.ID).Str("username", c.Username).Bool("active", c.Active).Msg("estado de admin actualizado")
	return nil
}

// findTenant busca por slug sin filtrar por estado: se puede aprovisionar un tenant inactivo.
func findTenant(ctx context.Context, deps *Deps, slug string) (*entity.Tenant, error) {
	t, err := deps.Tenants.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, fmt.Errorf("buscar tenant %q: %w", slug, err)
	}
	if t == nil {
		return nil, domain.ErrTenantNotFound
	}
	return t, nil
}
