package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

// LogoutMessage respuesta fija del logout.
const LogoutMessage = "Logged out successfully"

// AuthHandler maneja login, logout y perfil de admins.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookieConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Login godoc
// @Summary      Login de admin en un tenant
// @Description  Autentica con username/password y liga la sesión a la cookie. Invalida cualquier sesión previa del cliente.
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        tenantSlug  path  string            true  "Slug del tenant"
// @Param        body        body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{tenantSlug}/admins/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	res, err := h.uc.Login(c.UserContext(), GetSessionID(c), GetTenant(c), in)
	if err != nil {
		return respondError(c, err)
	}
	token, err := jwt.Generate(h.cookie.Secret, res.SessionID, h.cookie.Issuer, h.cookie.TTL)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookie.TTL),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(res.Profile)
}

// Logout godoc
// @Summary      Logout de admin
// @Description  Invalida la sesión actual si existe. Siempre responde 200.
// @Tags         admins
// @Produce      json
// @Param        tenantSlug  path  string  true  "Slug del tenant"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/{tenantSlug}/admins/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSessionID(c)); err != nil {
		log.Ctx(c.UserContext()).Warn().Err(err).Msg("no se pudo invalidar la sesión en logout")
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Message: LogoutMessage})
}

// Me godoc
// @Summary      Perfil del admin autenticado
// @Tags         admins
// @Produce      json
// @Param        tenantSlug  path  string  true  "Slug del tenant"
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/{tenantSlug}/admins/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetSessionID(c), GetTenant(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
