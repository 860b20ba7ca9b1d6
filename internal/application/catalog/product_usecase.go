package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. Toda operación va acotada al tenantID recibido,
// que el llamador obtiene del contexto autorizado y nunca del payload.
type ProductUseCase struct {
	repo     repository.ProductRepository
	tx       TxRunner
	recorder Recorder
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso. recorder puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner, recorder Recorder) *ProductUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ProductUseCase{repo: repo, tx: tx, recorder: recorder, now: time.Now}
}

// List devuelve los productos del tenant (activos e inactivos salvo filtro), ordenados por id.
func (uc *ProductUseCase) List(ctx context.Context, tenantID int64, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	items, err := uc.repo.ListByTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return dto.ToProductResponses(items), nil
}

// Get devuelve ErrProductNotFound si el producto no existe bajo ese tenant.
func (uc *ProductUseCase) Get(ctx context.Context, id, tenantID int64) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) get(ctx context.Context, id, tenantID int64) (*entity.Product, error) {
	p, err := uc.repo.GetByIDAndTenant(ctx, id, tenantID)
	if err != nil {
		return nil, fmt.Errorf("obtener producto %d: %w", id, err)
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// Create crea un producto del tenant. El insert y la escritura del imageSlug van en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, tenantID int64, in dto.ProductRequest) (out *dto.ProductResponse, err error) {
	defer func() { uc.recorder.CatalogOp("product", "create", err) }()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrProductNameRequired
	}
	exists, err := uc.repo.ExistsByNameAndTenant(ctx, name, tenantID)
	if err != nil {
		return nil, fmt.Errorf("verificar nombre de producto: %w", err)
	}
	if exists {
		return nil, domain.ErrProductNameTaken
	}

	now := uc.now()
	product := &entity.Product{
		TenantID:    tenantID,
		Name:        name,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Active != nil {
		product.Active = *in.Active
	}

	err = uc.tx.RunCatalog(ctx, func(products repository.ProductRepository, _ repository.VariantRepository) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		product.ImageSlug = product.BuildImageSlug()
		return products.UpdateImageSlug(ctx, product.ID, tenantID, product.ImageSlug)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrProductNameTaken
		}
		return nil, fmt.Errorf("crear producto: %w", err)
	}

	log.Ctx(ctx).Info().
		Int64("tenant_id", tenantID).
		Int64("product_id", product.ID).
		Str("image_slug", product.ImageSlug).
		Msg("producto creado")

	res := dto.ToProductResponse(product)
	return &res, nil
}

// Update sobrescribe los campos editables del producto y recalcula su imageSlug.
// Active nil conserva el valor actual.
func (uc *ProductUseCase) Update(ctx context.Context, id, tenantID int64, in dto.ProductRequest) (out *dto.ProductResponse, err error) {
	defer func() { uc.recorder.CatalogOp("product", "update", err) }()

	product, err := uc.get(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrProductNameRequired
	}
	if name != product.Name {
		exists, err := uc.repo.ExistsByNameAndTenant(ctx, name, tenantID)
		if err != nil {
			return nil, fmt.Errorf("verificar nombre de producto: %w", err)
		}
		if exists {
			return nil, domain.ErrProductNameTaken
		}
	}

	product.Name = name
	product.Category = in.Category
	product.Description = in.Description
	product.Price = in.Price
	product.Unit = in.Unit
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.ImageSlug = product.BuildImageSlug()
	product.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrProductNameTaken
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("actualizar producto %d: %w", id, err)
	}

	log.Ctx(ctx).Info().Int64("tenant_id", tenantID).Int64("product_id", id).Msg("producto actualizado")
	res := dto.ToProductResponse(product)
	return &res, nil
}

// Delete hace borrado lógico (active=false). El nombre sigue reservado en el tenant.
func (uc *ProductUseCase) Delete(ctx context.Context, id, tenantID int64) (err error) {
	defer func() { uc.recorder.CatalogOp("product", "delete", err) }()

	if _, err := uc.get(ctx, id, tenantID); err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, id, tenantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("eliminar producto %d: %w", id, err)
	}
	log.Ctx(ctx).Info().Int64("tenant_id", tenantID).Int64("product_id", id).Msg("producto desactivado")
	return nil
}
