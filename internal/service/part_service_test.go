package service

import (
	"context"
	"testing"

	"partsdesk/internal/dto"
	"partsdesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Redis and the dispatcher are nil throughout: caching and alerting are
// best-effort side channels and must not change CRUD behavior.

func TestPartCreateDefaults(t *testing.T) {
	repo := &stubPartRepo{}
	svc := NewPartService(repo, nil, nil)

	resp, err := svc.Create(context.Background(), dto.CreatePartRequest{
		GSMNumber:     "GSM-9",
		Category:      "Brakes",
		Price:         dec(100),
		StockQuantity: 2,
		MinimumStock:  5, // below threshold — alert path runs with nil dispatcher
	})
	require.NoError(t, err)
	assert.Equal(t, "piece", resp.Unit)
	assert.True(t, resp.CostPrice.IsZero(), "absent cost reads as zero")
	require.Len(t, repo.parts, 1)
}

func TestPartUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := &stubPartRepo{parts: []model.SparePart{part("GSM-9", "Brakes", 100, decPtr(60), 10, 5)}}
	svc := NewPartService(repo, nil, nil)

	newStock := 3
	resp, err := svc.Update(context.Background(), repo.parts[0].ID, dto.UpdatePartRequest{
		StockQuantity: &newStock,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.StockQuantity)
	assert.Equal(t, "Brakes", resp.Category, "untouched fields survive")
	assert.True(t, resp.Price.Equal(dec(100)))
}

func TestPartLookupWithoutCache(t *testing.T) {
	repo := &stubPartRepo{parts: []model.SparePart{part("GSM-9", "Brakes", 100, decPtr(60), 10, 5)}}
	svc := NewPartService(repo, nil, nil)

	resp, err := svc.Lookup(context.Background(), "GSM-9")
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(dec(100)))
	assert.Equal(t, 10, resp.StockQuantity)

	_, err = svc.Lookup(context.Background(), "GSM-404")
	assert.Error(t, err)
}

func TestPartDelete(t *testing.T) {
	repo := &stubPartRepo{parts: []model.SparePart{part("GSM-9", "Brakes", 100, decPtr(60), 10, 5)}}
	svc := NewPartService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), repo.parts[0].ID))
	assert.Empty(t, repo.parts)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
