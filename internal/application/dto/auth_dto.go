package dto

// LoginRequest credenciales del admin. El tenant lo da la ruta, nunca el body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse perfil del admin autenticado (sin hash de password).
type LoginResponse struct {
	AdminID    int64  `json:"adminId"`
	Username   string `json:"username"`
	TenantID   int64  `json:"tenantId"`
	TenantName string `json:"tenantName"`
	TenantSlug string `json:"tenantSlug"`
	Message    string `json:"message,omitempty"`
}

// LoginResult resultado interno del login: la sesión emitida más el perfil a devolver.
type LoginResult struct {
	SessionID string
	Profile   LoginResponse
}
