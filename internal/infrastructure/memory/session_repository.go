package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo almacén de sesiones en memoria. Las sesiones vencidas se descartan al leerlas.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewSessionRepository crea un almacén de sesiones vacío.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]entity.Session), now: time.Now}
}

func (r *SessionRepo) Save(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if s.IsExpired(r.now()) {
		delete(r.sessions, id)
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Len número de sesiones guardadas (incluye vencidas aún no leídas).
func (r *SessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
