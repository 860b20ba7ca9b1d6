package dto

// PageRequest paginación para listados (?limit=&offset=). Limit 0 = sin límite.
type PageRequest struct {
	Limit  int
	Offset int
}

// Normalize descarta valores negativos y acota Limit a MaxPageSize.
func (p *PageRequest) Normalize() {
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// MaxPageSize tope de elementos por página cuando se pide paginación.
const MaxPageSize = 500

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de respuestas sin payload (ej. logout).
type MessageResponse struct {
	Message string `json:"message"`
}
