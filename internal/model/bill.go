package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill status values. Default is paid — the shop records most bills after
// the customer has settled.
const (
	BillStatusPaid    = "Paid"
	BillStatusUnpaid  = "Unpaid"
	BillStatusPending = "Pending"
)

// Bill is a customer bill header. TotalAmount is a denormalized copy of the
// sum of the item line totals; it is recomputed and overwritten on every
// save, never trusted from stored state.
type Bill struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BillNumber   string          `gorm:"uniqueIndex;not null"`
	CustomerName string          `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentMode  *string
	Status       string `gorm:"not null;default:'Paid'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []BillItem `gorm:"foreignKey:BillID"`
}

func (Bill) TableName() string { return "bills" }

// BillItem is one line of a bill. GSMNumber is free-form: it usually names a
// spare part but nothing enforces that the part exists.
type BillItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BillID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	GSMNumber string          `gorm:"column:gsm_number;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Total = Quantity × Price, stored denormalized like the header total.
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
}

func (BillItem) TableName() string { return "bill_items" }
