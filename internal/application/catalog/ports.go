package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios de catálogo atados a ella.
// Si fn devuelve error no queda ningún cambio persistido.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		variantRepo repository.VariantRepository,
	) error) error
}

// Recorder recibe el resultado de cada operación de catálogo (implementado por pkg/metrics).
type Recorder interface {
	CatalogOp(entity, op string, err error)
}

type nopRecorder struct{}

func (nopRecorder) CatalogOp(string, string, error) {}
