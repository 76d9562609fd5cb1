package service

import (
	"context"
	"errors"
	"testing"

	"partsdesk/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory SparePartRepository stub ───────────────────────────────────────

type stubPartRepo struct {
	parts []model.SparePart
	err   error
}

func (r *stubPartRepo) Create(_ context.Context, p *model.SparePart) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.parts = append(r.parts, *p)
	return r.err
}

func (r *stubPartRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SparePart, error) {
	for i := range r.parts {
		if r.parts[i].ID == id {
			return &r.parts[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubPartRepo) FindByGSM(_ context.Context, gsm string) (*model.SparePart, error) {
	for i := range r.parts {
		if r.parts[i].GSMNumber == gsm {
			return &r.parts[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubPartRepo) List(_ context.Context) ([]model.SparePart, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.parts, nil
}

func (r *stubPartRepo) Update(_ context.Context, p *model.SparePart) error {
	for i := range r.parts {
		if r.parts[i].ID == p.ID {
			r.parts[i] = *p
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *stubPartRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.parts {
		if r.parts[i].ID == id {
			r.parts = append(r.parts[:i], r.parts[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func part(gsm, category string, price int64, cost *decimal.Decimal, stock, minimum int) model.SparePart {
	return model.SparePart{
		ID:            uuid.New(),
		GSMNumber:     gsm,
		Category:      category,
		Price:         dec(price),
		CostPrice:     cost,
		StockQuantity: stock,
		MinimumStock:  minimum,
		Unit:          "piece",
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestSummarizeSinglePart(t *testing.T) {
	parts := []model.SparePart{part("GSM-1", "Brakes", 15, decPtr(10), 5, 10)}

	s := Summarize(parts)

	assert.Equal(t, 1, s.TotalParts)
	assert.True(t, s.InventoryValue.Equal(dec(50)), "inventory value = cost*stock, got %s", s.InventoryValue)
	assert.True(t, s.TotalProfit.Equal(dec(25)), "total profit = (sell-cost)*stock, got %s", s.TotalProfit)
	assert.Equal(t, 1, s.LowStockCount)
	require.Len(t, s.LowStock, 1)
	assert.Equal(t, "GSM-1", s.LowStock[0].GSMNumber)
	// 5 ≤ 10/2 — inside the critical band
	assert.True(t, s.LowStock[0].Critical)
}

func TestSummarizeNilCostTreatedAsZero(t *testing.T) {
	parts := []model.SparePart{part("GSM-2", "Filters", 100, nil, 4, 2)}

	s := Summarize(parts)

	assert.True(t, s.InventoryValue.IsZero())
	assert.True(t, s.TotalProfit.Equal(dec(400)))
	assert.Equal(t, 0, s.LowStockCount)
}

func TestSummarizeZeroStock(t *testing.T) {
	parts := []model.SparePart{part("GSM-3", "Clutch", 200, decPtr(150), 0, 3)}

	s := Summarize(parts)

	assert.True(t, s.InventoryValue.IsZero())
	assert.True(t, s.TotalProfit.IsZero())
	assert.Equal(t, 1, s.LowStockCount)
	assert.True(t, s.LowStock[0].Critical)
}

func TestSummarizeLowStockBoundary(t *testing.T) {
	parts := []model.SparePart{
		part("GSM-4", "Bulbs", 10, decPtr(5), 6, 6),  // stock == minimum: not low
		part("GSM-5", "Bulbs", 10, decPtr(5), 5, 6),  // just below: low, not critical
		part("GSM-6", "Bulbs", 10, decPtr(5), 3, 6),  // half the threshold: critical
	}

	s := Summarize(parts)

	assert.Equal(t, 2, s.LowStockCount)
	assert.Equal(t, "GSM-5", s.LowStock[0].GSMNumber)
	assert.False(t, s.LowStock[0].Critical)
	assert.Equal(t, "GSM-6", s.LowStock[1].GSMNumber)
	assert.True(t, s.LowStock[1].Critical)
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalParts)
	assert.True(t, s.InventoryValue.IsZero())
	assert.True(t, s.TotalProfit.IsZero())
	assert.NotNil(t, s.LowStock)
	assert.Empty(t, s.LowStock)
}

func TestInventorySummaryService(t *testing.T) {
	repo := &stubPartRepo{parts: []model.SparePart{
		part("GSM-1", "Brakes", 15, decPtr(10), 5, 10),
		part("GSM-2", "Filters", 100, nil, 4, 2),
	}}
	svc := NewInventoryService(repo)

	s, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalParts)
	assert.True(t, s.InventoryValue.Equal(dec(50)))
	assert.True(t, s.TotalProfit.Equal(dec(425)))
}

func TestInventorySummaryFetchError(t *testing.T) {
	repo := &stubPartRepo{err: errors.New("connection refused")}
	svc := NewInventoryService(repo)

	_, err := svc.Summary(context.Background())
	assert.Error(t, err)
}
