package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// SessionRepository almacén de sesiones por cliente. Get devuelve (nil, nil) si la sesión no
// existe o ya venció; Delete sobre una sesión inexistente no es error.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
