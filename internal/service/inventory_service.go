package service

import (
	"context"

	"partsdesk/internal/dto"
	"partsdesk/internal/model"
	"partsdesk/internal/repository"

	"github.com/shopspring/decimal"
)

// InventoryService derives the dashboard summary from the current inventory
// snapshot. Nothing is cached or maintained incrementally: every call
// re-fetches and recomputes from scratch.
type InventoryService interface {
	Summary(ctx context.Context) (*dto.InventorySummary, error)
}

type inventoryService struct {
	repo repository.SparePartRepository
}

func NewInventoryService(repo repository.SparePartRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) Summary(ctx context.Context) (*dto.InventorySummary, error) {
	parts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := Summarize(parts)
	return &summary, nil
}

// Summarize reduces one parts snapshot to the four dashboard figures and the
// low-stock set. All values come from the same slice, so they can never mix
// states from different fetches.
func Summarize(parts []model.SparePart) dto.InventorySummary {
	summary := dto.InventorySummary{
		TotalParts: len(parts),
		LowStock:   []dto.LowStockPart{},
	}

	value := decimal.Zero
	profit := decimal.Zero
	for i := range parts {
		p := &parts[i]
		stock := decimal.NewFromInt(int64(p.StockQuantity))
		value = value.Add(p.Cost().Mul(stock))
		profit = profit.Add(p.Price.Sub(p.Cost()).Mul(stock))

		if p.LowStock() {
			summary.LowStock = append(summary.LowStock, dto.LowStockPart{
				GSMNumber:     p.GSMNumber,
				Category:      p.Category,
				StockQuantity: p.StockQuantity,
				MinimumStock:  p.MinimumStock,
				Critical:      p.CriticalStock(),
			})
		}
	}

	summary.InventoryValue = value
	summary.TotalProfit = profit
	summary.LowStockCount = len(summary.LowStock)
	return summary
}
