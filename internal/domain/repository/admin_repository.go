package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (el "credential store").
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	// FindActiveByUsernameAndTenant busca solo entre admins activos; (nil, nil) si no hay coincidencia.
	FindActiveByUsernameAndTenant(ctx context.Context, username string, tenantID int64) (*entity.Admin, error)
	GetByIDAndTenant(ctx context.Context, id, tenantID int64) (*entity.Admin, error)
	SetActive(ctx context.Context, username string, tenantID int64, active bool) error
}
