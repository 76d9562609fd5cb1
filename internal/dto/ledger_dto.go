package dto

import "github.com/shopspring/decimal"

// LedgerFilter narrows the ledger by exact category and/or GSM number.
// Blank means wildcard; both set means AND.
type LedgerFilter struct {
	Category  string `form:"category"`
	GSMNumber string `form:"gsm"`
}

// LedgerRow is the per-part profit projection. Not persisted — derived from
// the current inventory snapshot on every request.
type LedgerRow struct {
	ID             string          `json:"id"`
	GSMNumber      string          `json:"gsm_number"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	ProfitPerPiece decimal.Decimal `json:"profit_per_piece"`
	Stock          int             `json:"stock"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

// LedgerSummary reduces the filtered rows to four scalars. ProfitPerPieceSum
// is deliberately unweighted by stock while TotalProfit is weighted — both
// figures are shown side by side on the dashboard.
type LedgerSummary struct {
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	ProfitPerPieceSum decimal.Decimal `json:"profit_per_piece_sum"`
}

// ChartPoint is one bucket of the profit/expense chart. The current chart is
// a single snapshot bucket, not a time series.
type ChartPoint struct {
	Label   string          `json:"label"`
	Profit  decimal.Decimal `json:"profit"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type LedgerResponse struct {
	Rows    []LedgerRow   `json:"rows"`
	Summary LedgerSummary `json:"summary"`
	Chart   []ChartPoint  `json:"chart"`
}
