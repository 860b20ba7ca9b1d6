package entity

import "time"

// Tenant representa una organización aislada del sistema (multi-tenant).
// Slug es la clave de búsqueda en la URL; es única e inmutable por convención.
type Tenant struct {
	ID        int64
	Slug      string
	Name      string
	Active    bool // un tenant inactivo rechaza todas las operaciones
	CreatedAt time.Time
	UpdatedAt time.Time
}
