package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BillItemInput is one editable line of a bill. The client may send a stale
// or missing total; the server recomputes quantity × price on every save.
type BillItemInput struct {
	GSMNumber string          `json:"gsm_number" validate:"required,min=1"`
	Quantity  int             `json:"quantity"   validate:"min=1"`
	Price     decimal.Decimal `json:"price"      validate:"min=0"`
}

type CreateBillRequest struct {
	BillNumber   string          `json:"bill_number"   validate:"required,min=1,max=60"`
	CustomerName string          `json:"customer_name" validate:"required,min=1,max=120"`
	PaymentMode  *string         `json:"payment_mode"`
	Status       string          `json:"status"        validate:"omitempty,oneof=Paid Unpaid Pending"`
	Items        []BillItemInput `json:"items"         validate:"required,min=1,dive"`
}

// UpdateBillRequest replaces the bill's scalar fields and its entire item set.
type UpdateBillRequest struct {
	CustomerName string          `json:"customer_name" validate:"required,min=1,max=120"`
	PaymentMode  *string         `json:"payment_mode"`
	Status       string          `json:"status"        validate:"omitempty,oneof=Paid Unpaid Pending"`
	Items        []BillItemInput `json:"items"         validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BillItemResponse struct {
	ID        string          `json:"id"`
	GSMNumber string          `json:"gsm_number"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

type BillResponse struct {
	ID           string             `json:"id"`
	BillNumber   string             `json:"bill_number"`
	CustomerName string             `json:"customer_name"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	PaymentMode  *string            `json:"payment_mode"`
	Status       string             `json:"status"`
	CreatedAt    string             `json:"created_at"`
	Items        []BillItemResponse `json:"items,omitempty"`
}
