package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// VariantRequest entrada para crear o actualizar una variante.
// productId y tenantId salen de la ruta y del contexto autorizado.
type VariantRequest struct {
	QuantityValue decimal.Decimal `json:"quantityValue"`
	QuantityUnit  string          `json:"quantityUnit"`
	Price         decimal.Decimal `json:"price"`
	Active        *bool           `json:"active"`
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"productId"`
	TenantID      int64           `json:"tenantId"`
	QuantityValue decimal.Decimal `json:"quantityValue"`
	QuantityUnit  string          `json:"quantityUnit"`
	Price         decimal.Decimal `json:"price"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func ToVariantResponse(v *entity.ProductVariant) VariantResponse {
	return VariantResponse{
		ID:            v.ID,
		ProductID:     v.ProductID,
		TenantID:      v.TenantID,
		QuantityValue: v.QuantityValue,
		QuantityUnit:  v.QuantityUnit,
		Price:         v.Price,
		Active:        v.Active,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func ToVariantResponses(items []*entity.ProductVariant) []VariantResponse {
	out := make([]VariantResponse, 0, len(items))
	for _, v := range items {
		out = append(out, ToVariantResponse(v))
	}
	return out
}
