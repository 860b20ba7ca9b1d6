package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas). La capa HTTP decide el status según el tipo.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Error es un error de dominio concreto: un código estable para clientes, un mensaje legible
// y el tipo (Kind) al que pertenece. errors.Is(err, Kind) es true.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Errores concretos del sistema.
var (
	ErrTenantNotFound  = &Error{Kind: ErrNotFound, Code: "TENANT_NOT_FOUND", Message: "tenant no encontrado"}
	ErrTenantInactive  = &Error{Kind: ErrForbidden, Code: "TENANT_INACTIVE", Message: "el tenant está inactivo"}
	ErrProductNotFound = &Error{Kind: ErrNotFound, Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"}
	ErrVariantNotFound = &Error{Kind: ErrNotFound, Code: "VARIANT_NOT_FOUND", Message: "variante no encontrada"}
	ErrAdminNotFound   = &Error{Kind: ErrNotFound, Code: "ADMIN_NOT_FOUND", Message: "admin no encontrado"}

	// Mismo error para admin inexistente, inactivo o password incorrecto (evita enumeración).
	ErrInvalidCredentials = &Error{Kind: ErrUnauthorized, Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"}
	ErrUnauthenticated    = &Error{Kind: ErrUnauthorized, Code: "UNAUTHENTICATED", Message: "no autenticado"}
	ErrTenantMismatch     = &Error{Kind: ErrForbidden, Code: "TENANT_MISMATCH", Message: "acceso denegado: solo puede operar sobre los recursos de su propio tenant"}

	ErrProductNameTaken = &Error{Kind: ErrConflict, Code: "PRODUCT_NAME_TAKEN", Message: "ya existe un producto con ese nombre en este tenant"}
	ErrTenantSlugTaken  = &Error{Kind: ErrConflict, Code: "TENANT_SLUG_TAKEN", Message: "ya existe un tenant con ese slug"}
	ErrUsernameTaken    = &Error{Kind: ErrConflict, Code: "USERNAME_TAKEN", Message: "ya existe un admin con ese username en este tenant"}

	ErrProductNameRequired  = &Error{Kind: ErrInvalidInput, Code: "VALIDATION", Message: "name es requerido"}
	ErrQuantityUnitRequired = &Error{Kind: ErrInvalidInput, Code: "VALIDATION", Message: "quantityUnit es requerido"}
)
