package entity

import "time"

// Principal es la identidad autenticada ligada a una sesión: un Admin más su tenant.
type Principal struct {
	AdminID  int64  `json:"adminId"`
	TenantID int64  `json:"tenantId"`
	Username string `json:"username"`
}

// Session liga un Principal a una sesión de cliente hasta ExpiresAt.
type Session struct {
	ID        string    `json:"id"`
	Principal Principal `json:"principal"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired informa si la sesión ya venció en el instante now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
