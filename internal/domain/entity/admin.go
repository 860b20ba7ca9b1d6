package entity

import "time"

// Admin representa una cuenta administradora. Pertenece a un único Tenant (TenantID inmutable);
// el mismo username puede existir en otro tenant como un principal distinto.
type Admin struct {
	ID           int64
	TenantID     int64
	Username     string
	PasswordHash string // bcrypt, nunca se expone en respuestas ni logs
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
