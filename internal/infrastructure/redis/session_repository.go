package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

var _ repository.SessionRepository = (*SessionRepository)(nil)

const keyPrefix = "session:"

// SessionRepository almacén de sesiones sobre Redis. Cada sesión es un JSON con TTL hasta ExpiresAt,
// así Redis descarta por sí mismo las sesiones vencidas.
type SessionRepository struct {
	client *redis.Client
	prefix string
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewSessionRepository construye el repositorio. namespace se antepone a las claves (puede ser vacío).
func NewSessionRepository(client *redis.Client, namespace string) *SessionRepository {
	prefix := keyPrefix
	if namespace != "" {
		prefix = namespace + ":" + keyPrefix
	}
	return &SessionRepository{client: client, prefix: prefix}
}

func (r *SessionRepository) key(id string) string {
	return r.prefix + id
}

// Save guarda la sesión; una sesión ya vencida no se guarda.
func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := r.client.Set(ctx, r.key(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("guardar sesión en redis: %w", err)
	}
	return nil
}

// Get devuelve (nil, nil) si la sesión no existe o ya venció.
func (r *SessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión de redis: %w", err)
	}
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("deserializar sesión: %w", err)
	}
	if session.IsExpired(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

// Delete es idempotente.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("eliminar sesión de redis: %w", err)
	}
	return nil
}
