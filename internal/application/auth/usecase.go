package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/metrics"
)

// LoginSuccessMessage mensaje fijo del perfil devuelto en un login exitoso.
const LoginSuccessMessage = "Login successful"

// Recorder recibe eventos de autenticación (implementado por pkg/metrics).
type Recorder interface {
	LoginAttempt(outcome string)
	AccessDenied(reason string)
}

type nopRecorder struct{}

func (nopRecorder) LoginAttempt(string) {}
func (nopRecorder) AccessDenied(string) {}

// SessionConfig parámetros de las sesiones emitidas.
type SessionConfig struct {
	TTL time.Duration
}

// AuthUseCase autenticador de sesión: login, logout, principal actual y perfil del admin.
type AuthUseCase struct {
	admins   repository.AdminRepository
	sessions repository.SessionRepository
	cfg      SessionConfig
	recorder Recorder
	now      func() time.Time

	// dummyHash se compara cuando el admin no existe para no revelar por tiempo de respuesta qué usernames existen.
	dummyHash []byte
}

// NewAuthUseCase construye el caso de uso de auth. recorder puede ser nil.
func NewAuthUseCase(admins repository.AdminRepository, sessions repository.SessionRepository, cfg SessionConfig, recorder Recorder) (*AuthUseCase, error) {
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("auth: TTL de sesión inválido %v", cfg.TTL)
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: generar hash de referencia: %w", err)
	}
	return &AuthUseCase{
		admins:    admins,
		sessions:  sessions,
		cfg:       cfg,
		recorder:  recorder,
		now:       time.Now,
		dummyHash: dummy,
	}, nil
}

// Login verifica username/password dentro del tenant y liga un Principal a una sesión nueva.
// Admin inexistente, inactivo o password incorrecto devuelven el mismo ErrInvalidCredentials.
// Cualquier principal ligado a currentSessionID se invalida antes de emitir la nueva sesión.
func (uc *AuthUseCase) Login(ctx context.Context, currentSessionID string, tenant *entity.Tenant, in dto.LoginRequest) (*dto.LoginResult, error) {
	username := strings.TrimSpace(in.Username)

	var admin *entity.Admin
	if username != "" {
		a, err := uc.admins.FindActiveByUsernameAndTenant(ctx, username, tenant.ID)
		if err != nil {
			return nil, fmt.Errorf("buscar admin: %w", err)
		}
		admin = a
	}

	if admin == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(in.Password))
		uc.loginFailed(ctx, tenant, username)
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		uc.loginFailed(ctx, tenant, username)
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.Logout(ctx, currentSessionID); err != nil {
		return nil, err
	}

	now := uc.now()
	session := &entity.Session{
		ID: uuid.NewString(),
		Principal: entity.Principal{
			AdminID:  admin.ID,
			TenantID: tenant.ID,
			Username: admin.Username,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}

	uc.recorder.LoginAttempt(metrics.LoginSuccess)
	log.Ctx(ctx).Info().
		Int64("tenant_id", tenant.ID).
		Int64("admin_id", admin.ID).
		Msg("login exitoso")

	return &dto.LoginResult{
		SessionID: session.ID,
		Profile:   toProfile(admin, tenant, LoginSuccessMessage),
	}, nil
}

func (uc *AuthUseCase) loginFailed(ctx context.Context, tenant *entity.Tenant, username string) {
	uc.recorder.LoginAttempt(metrics.LoginFailure)
	log.Ctx(ctx).Warn().
		Int64("tenant_id", tenant.ID).
		Str("username", username).
		Msg("login fallido: credenciales inválidas")
}

// Logout invalida la sesión. Es idempotente: sesión vacía o desconocida no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("invalidar sesión: %w", err)
	}
	return nil
}

// CurrentPrincipal devuelve el principal de la sesión o nil si no hay ninguno (no es error).
// Una sesión vencida se elimina y cuenta como ausente.
func (uc *AuthUseCase) CurrentPrincipal(ctx context.Context, sessionID string) (*entity.Principal, error) {
	if sessionID == "" {
		return nil, nil
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	if session.IsExpired(uc.now()) {
		if err := uc.sessions.Delete(ctx, sessionID); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("no se pudo eliminar sesión vencida")
		}
		return nil, nil
	}
	p := session.Principal
	return &p, nil
}

// Me devuelve el perfil del admin de la sesión. ErrUnauthenticated si no hay sesión o si el admin
// ya no existe o fue desactivado.
func (uc *AuthUseCase) Me(ctx context.Context, sessionID string, tenant *entity.Tenant) (*dto.LoginResponse, error) {
	principal, err := uc.CurrentPrincipal(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}
	if principal.TenantID != tenant.ID {
		return nil, domain.ErrTenantMismatch
	}
	admin, err := uc.admins.GetByIDAndTenant(ctx, principal.AdminID, tenant.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("obtener admin: %w", err)
	}
	if admin == nil || !admin.Active {
		return nil, domain.ErrUnauthenticated
	}
	out := toProfile(admin, tenant, "")
	return &out, nil
}

func toProfile(a *entity.Admin, t *entity.Tenant, message string) dto.LoginResponse {
	return dto.LoginResponse{
		AdminID:    a.ID,
		Username:   a.Username,
		TenantID:   t.ID,
		TenantName: t.Name,
		TenantSlug: t.Slug,
		Message:    message,
	}
}
