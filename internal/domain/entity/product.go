package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Product representa un producto del catálogo de un tenant.
// Active=false es el borrado lógico; ningún producto se elimina físicamente.
type Product struct {
	ID          int64
	TenantID    int64 // lo asigna el servidor desde el contexto autorizado
	Name        string // único por tenant, activo o no
	Category    string
	Description string
	Price       decimal.Decimal
	Unit        string
	Active      bool
	ImageSlug   string // clave externa estable del asset: nombre_normalizado_tenant_id
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeName pasa a minúsculas, recorta espacios, colapsa cada tramo de caracteres fuera de
// [a-z0-9] en un único "_" y elimina los "_" de los extremos.
func NormalizeName(name string) string {
	s := strings.TrimSpace(cases.Lower(language.Und).String(name))
	s = nonSlugChars.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// BuildImageSlug deriva el slug de imagen a partir del nombre, el tenant y el ID asignado.
// Devuelve "" mientras el producto no tenga ID.
func (p *Product) BuildImageSlug() string {
	if p.ID == 0 {
		return ""
	}
	return NormalizeName(p.Name) + "_" + strconv.FormatInt(p.TenantID, 10) + "_" + strconv.FormatInt(p.ID, 10)
}
