package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant presentación de un producto (ej. 5 kg, 10 kg) con su propio precio.
// TenantID es copia desnormalizada del tenant del producto y siempre coincide con él.
type ProductVariant struct {
	ID            int64
	ProductID     int64
	TenantID      int64
	QuantityValue decimal.Decimal
	QuantityUnit  string
	Price         decimal.Decimal
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
