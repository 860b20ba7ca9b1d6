package instrumented

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepository)(nil)

// Observer recibe la duración y el resultado de cada operación (pkg/metrics lo implementa).
type Observer interface {
	SessionOp(op string, start time.Time, err error)
}

// SessionRepository envuelve un almacén de sesiones y mide cada llamada.
type SessionRepository struct {
	next repository.SessionRepository
	obs  Observer
}

// NewSessionRepository decora next con métricas.
func NewSessionRepository(next repository.SessionRepository, obs Observer) *SessionRepository {
	return &SessionRepository{next: next, obs: obs}
}

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) (err error) {
	start := time.Now()
	defer func() { r.obs.SessionOp("save", start, err) }()
	return r.next.Save(ctx, session)
}

func (r *SessionRepository) Get(ctx context.Context, id string) (s *entity.Session, err error) {
	start := time.Now()
	defer func() { r.obs.SessionOp("get", start, err) }()
	return r.next.Get(ctx, id)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { r.obs.SessionOp("delete", start, err) }()
	return r.next.Delete(ctx, id)
}
