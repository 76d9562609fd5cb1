package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SparePart is one inventory row. GSMNumber is the human-readable part code
// bill items reference (not a strict foreign key).
type SparePart struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GSMNumber    string    `gorm:"column:gsm_number;uniqueIndex;not null"`
	Category     string    `gorm:"index;not null"`
	Manufacturer *string
	// Price is the unit sell price; CostPrice may be unknown for old stock
	// and is treated as zero in every derivation.
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	CostPrice     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	StockQuantity int              `gorm:"not null;default:0"`
	MinimumStock  int              `gorm:"not null;default:0"`
	Unit          string           `gorm:"not null;default:'piece'"`
	Location      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SparePart) TableName() string { return "spare_parts" }

// Cost returns the cost price, defaulting an absent cost to zero.
func (p *SparePart) Cost() decimal.Decimal {
	if p.CostPrice == nil {
		return decimal.Zero
	}
	return *p.CostPrice
}

// LowStock reports whether the part is below its reorder threshold.
func (p *SparePart) LowStock() bool {
	return p.StockQuantity < p.MinimumStock
}

// CriticalStock reports whether the part is at or below half its threshold,
// which drives the stronger reorder warning.
func (p *SparePart) CriticalStock() bool {
	return p.StockQuantity*2 <= p.MinimumStock
}
