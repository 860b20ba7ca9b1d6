package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ catalog.TxRunner = (*Store)(nil)

// Store guarda tenants, admins, productos y variantes en memoria.
// Solo para desarrollo y pruebas: los datos se pierden al reiniciar.
// Aplica las mismas restricciones de unicidad que el esquema PostgreSQL.
type Store struct {
	mu sync.RWMutex

	tenants  map[int64]entity.Tenant
	admins   map[int64]entity.Admin
	products map[int64]entity.Product
	variants map[int64]entity.ProductVariant

	// secuencias: como en PostgreSQL, no retroceden con un rollback
	tenantSeq  int64
	adminSeq   int64
	productSeq int64
	variantSeq int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		tenants:  make(map[int64]entity.Tenant),
		admins:   make(map[int64]entity.Admin),
		products: make(map[int64]entity.Product),
		variants: make(map[int64]entity.ProductVariant),
	}
}

// Tenants devuelve el repositorio de tenants.
func (s *Store) Tenants() *TenantRepo { return &TenantRepo{s: s} }

// Admins devuelve el repositorio de admins.
func (s *Store) Admins() *AdminRepo { return &AdminRepo{s: s} }

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Variants devuelve el repositorio de variantes fuera de transacción.
func (s *Store) Variants() *VariantRepo { return &VariantRepo{s: s} }

// RunCatalog ejecuta fn con el store bloqueado. Si fn falla se restauran productos y variantes.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	products := maps.Clone(s.products)
	variants := maps.Clone(s.variants)

	if err := fn(&ProductRepo{s: s, inTx: true}, &VariantRepo{s: s, inTx: true}); err != nil {
		s.products = products
		s.variants = variants
		return err
	}
	return nil
}

// read y write toman el lock salvo que el llamador ya lo tenga (dentro de RunCatalog).
func (s *Store) read(ctx context.Context, inTx bool, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return fn()
}

func (s *Store) write(ctx context.Context, inTx bool, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn()
}
