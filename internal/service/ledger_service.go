package service

import (
	"context"

	"partsdesk/internal/dto"
	"partsdesk/internal/model"
	"partsdesk/internal/repository"

	"github.com/shopspring/decimal"
)

// LedgerService builds the profit ledger: a per-part profit projection over
// the filtered inventory snapshot, its summary scalars, and the chart data.
type LedgerService interface {
	Ledger(ctx context.Context, filter dto.LedgerFilter) (*dto.LedgerResponse, error)
}

type ledgerService struct {
	repo repository.SparePartRepository
}

func NewLedgerService(repo repository.SparePartRepository) LedgerService {
	return &ledgerService{repo: repo}
}

func (s *ledgerService) Ledger(ctx context.Context, filter dto.LedgerFilter) (*dto.LedgerResponse, error) {
	parts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := BuildLedger(parts, filter)
	return &resp, nil
}

// BuildLedger runs the filter → map → reduce pipeline over a parts snapshot.
// Filters are exact matches combined with AND; a blank filter is a wildcard.
// An empty result yields an empty (non-nil) row slice so the client can
// render its explicit empty state.
func BuildLedger(parts []model.SparePart, filter dto.LedgerFilter) dto.LedgerResponse {
	rows := []dto.LedgerRow{}

	totalCost := decimal.Zero
	totalProfit := decimal.Zero
	netRevenue := decimal.Zero
	perPieceSum := decimal.Zero

	for i := range parts {
		p := &parts[i]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.GSMNumber != "" && p.GSMNumber != filter.GSMNumber {
			continue
		}

		cost := p.Cost()
		profitPerPiece := p.Price.Sub(cost)
		stock := decimal.NewFromInt(int64(p.StockQuantity))
		rowProfit := profitPerPiece.Mul(stock)

		rows = append(rows, dto.LedgerRow{
			ID:             p.ID.String(),
			GSMNumber:      p.GSMNumber,
			Category:       p.Category,
			Price:          p.Price,
			Cost:           cost,
			ProfitPerPiece: profitPerPiece,
			Stock:          p.StockQuantity,
			TotalProfit:    rowProfit,
		})

		totalCost = totalCost.Add(cost.Mul(stock))
		totalProfit = totalProfit.Add(rowProfit)
		netRevenue = netRevenue.Add(p.Price.Mul(stock))
		// Unweighted on purpose: the "Profit Per Piece" card sums raw
		// per-unit profit while "Total Profit" weights by stock.
		perPieceSum = perPieceSum.Add(profitPerPiece)
	}

	summary := dto.LedgerSummary{
		TotalCost:         totalCost,
		TotalProfit:       totalProfit,
		NetRevenue:        netRevenue,
		ProfitPerPieceSum: perPieceSum,
	}

	// One bucket representing the current snapshot — not a time series.
	chart := []dto.ChartPoint{{
		Label:   "Inventory",
		Profit:  totalProfit,
		Expense: totalCost,
		Net:     netRevenue,
	}}

	return dto.LedgerResponse{Rows: rows, Summary: summary, Chart: chart}
}
