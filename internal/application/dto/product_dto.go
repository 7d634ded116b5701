package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. El stock inicial es 0;
// el saldo solo se muta vía movimientos.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"categoryId"`
	SupplierID   string          `json:"supplierId,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitMeasure  string          `json:"unitMeasure,omitempty"`
	ReorderLevel int64           `json:"reorderLevel"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// CurrentStock no es editable por esta vía.
type UpdateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"categoryId"`
	SupplierID   string          `json:"supplierId,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitMeasure  string          `json:"unitMeasure,omitempty"`
	ReorderLevel int64           `json:"reorderLevel"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"categoryId"`
	SupplierID   string          `json:"supplierId,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitMeasure  string          `json:"unitMeasure"`
	ReorderLevel int64           `json:"reorderLevel"`
	CurrentStock int64           `json:"currentStock"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}
