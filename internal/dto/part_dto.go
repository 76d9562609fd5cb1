package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePartRequest struct {
	GSMNumber     string           `json:"gsm_number"     validate:"required,min=1,max=60"`
	Category      string           `json:"category"       validate:"required,min=1,max=120"`
	Manufacturer  *string          `json:"manufacturer"`
	Price         decimal.Decimal  `json:"price"          validate:"min=0"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	StockQuantity int              `json:"stock_quantity" validate:"min=0"`
	MinimumStock  int              `json:"minimum_stock"  validate:"min=0"`
	Unit          string           `json:"unit"`
	Location      *string          `json:"location"`
}

type UpdatePartRequest struct {
	Category      *string          `json:"category"       validate:"omitempty,min=1,max=120"`
	Manufacturer  *string          `json:"manufacturer"`
	Price         *decimal.Decimal `json:"price"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,min=0"`
	MinimumStock  *int             `json:"minimum_stock"  validate:"omitempty,min=0"`
	Unit          *string          `json:"unit"`
	Location      *string          `json:"location"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PartResponse struct {
	ID            string          `json:"id"`
	GSMNumber     string          `json:"gsm_number"`
	Category      string          `json:"category"`
	Manufacturer  *string         `json:"manufacturer"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity"`
	MinimumStock  int             `json:"minimum_stock"`
	Unit          string          `json:"unit"`
	Location      *string         `json:"location"`
	CreatedAt     string          `json:"created_at"`
}

// LowStockPart is one row of the reorder alert set.
type LowStockPart struct {
	GSMNumber     string `json:"gsm_number"`
	Category      string `json:"category"`
	StockQuantity int    `json:"stock_quantity"`
	MinimumStock  int    `json:"minimum_stock"`
	// Critical marks stock at or below half the threshold.
	Critical bool `json:"critical"`
}

// InventorySummary carries the four dashboard figures plus the low-stock set.
// All values derive from one snapshot, so they are mutually consistent.
type InventorySummary struct {
	TotalParts     int             `json:"total_parts"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
	LowStockCount  int             `json:"low_stock_count"`
	LowStock       []LowStockPart  `json:"low_stock"`
}

// PartLookupResponse is the billing form's autofill payload, keyed by GSM.
type PartLookupResponse struct {
	GSMNumber     string          `json:"gsm_number"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Unit          string          `json:"unit"`
}
