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

// VariantUseCase casos de uso de variantes. Una variante hereda siempre el tenant de su producto.
type VariantUseCase struct {
	products repository.ProductRepository
	variants repository.VariantRepository
	recorder Recorder
	now      func() time.Time
}

// NewVariantUseCase construye el caso de uso. recorder puede ser nil.
func NewVariantUseCase(products repository.ProductRepository, variants repository.VariantRepository, recorder Recorder) *VariantUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &VariantUseCase{products: products, variants: variants, recorder: recorder, now: time.Now}
}

// ListByProduct verifica que el producto pertenezca al tenant y devuelve sus variantes ordenadas por id.
func (uc *VariantUseCase) ListByProduct(ctx context.Context, productID, tenantID int64) ([]dto.VariantResponse, error) {
	if err := uc.ensureProduct(ctx, productID, tenantID); err != nil {
		return nil, err
	}
	items, err := uc.variants.ListByProductAndTenant(ctx, productID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listar variantes del producto %d: %w", productID, err)
	}
	return dto.ToVariantResponses(items), nil
}

// Create agrega una variante al producto. productID y tenantID vienen del contexto verificado.
func (uc *VariantUseCase) Create(ctx context.Context, productID, tenantID int64, in dto.VariantRequest) (out *dto.VariantResponse, err error) {
	defer func() { uc.recorder.CatalogOp("variant", "create", err) }()

	if err := uc.ensureProduct(ctx, productID, tenantID); err != nil {
		return nil, err
	}
	unit := strings.TrimSpace(in.QuantityUnit)
	if unit == "" {
		return nil, domain.ErrQuantityUnitRequired
	}

	now := uc.now()
	variant := &entity.ProductVariant{
		ProductID:     productID,
		TenantID:      tenantID,
		QuantityValue: in.QuantityValue,
		QuantityUnit:  unit,
		Price:         in.Price,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Active != nil {
		variant.Active = *in.Active
	}
	if err := uc.variants.Create(ctx, variant); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("crear variante: %w", err)
	}

	log.Ctx(ctx).Info().
		Int64("tenant_id", tenantID).
		Int64("product_id", productID).
		Int64("variant_id", variant.ID).
		Msg("variante creada")

	res := dto.ToVariantResponse(variant)
	return &res, nil
}

// Update sobrescribe cantidad, unidad, precio y estado. Active nil conserva el valor actual.
func (uc *VariantUseCase) Update(ctx context.Context, variantID, tenantID int64, in dto.VariantRequest) (out *dto.VariantResponse, err error) {
	defer func() { uc.recorder.CatalogOp("variant", "update", err) }()

	variant, err := uc.get(ctx, variantID, tenantID)
	if err != nil {
		return nil, err
	}
	unit := strings.TrimSpace(in.QuantityUnit)
	if unit == "" {
		return nil, domain.ErrQuantityUnitRequired
	}

	variant.QuantityValue = in.QuantityValue
	variant.QuantityUnit = unit
	variant.Price = in.Price
	if in.Active != nil {
		variant.Active = *in.Active
	}
	variant.UpdatedAt = uc.now()

	if err := uc.variants.Update(ctx, variant); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrVariantNotFound
		}
		return nil, fmt.Errorf("actualizar variante %d: %w", variantID, err)
	}

	log.Ctx(ctx).Info().Int64("tenant_id", tenantID).Int64("variant_id", variantID).Msg("variante actualizada")
	res := dto.ToVariantResponse(variant)
	return &res, nil
}

// Delete hace borrado lógico de la variante.
func (uc *VariantUseCase) Delete(ctx context.Context, variantID, tenantID int64) (err error) {
	defer func() { uc.recorder.CatalogOp("variant", "delete", err) }()

	if _, err := uc.get(ctx, variantID, tenantID); err != nil {
		return err
	}
	if err := uc.variants.SoftDelete(ctx, variantID, tenantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrVariantNotFound
		}
		return fmt.Errorf("eliminar variante %d: %w", variantID, err)
	}
	log.Ctx(ctx).Info().Int64("tenant_id", tenantID).Int64("variant_id", variantID).Msg("variante desactivada")
	return nil
}

func (uc *VariantUseCase) get(ctx context.Context, variantID, tenantID int64) (*entity.ProductVariant, error) {
	v, err := uc.variants.GetByIDAndTenant(ctx, variantID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("obtener variante %d: %w", variantID, err)
	}
	if v == nil {
		return nil, domain.ErrVariantNotFound
	}
	return v, nil
}

func (uc *VariantUseCase) ensureProduct(ctx context.Context, productID, tenantID int64) error {
	p, err := uc.products.GetByIDAndTenant(ctx, productID, tenantID)
	if err != nil {
		return fmt.Errorf("obtener producto %d: %w", productID, err)
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	return nil
}
