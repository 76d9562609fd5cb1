package service

import (
	"context"
	"encoding/json"
	"time"

	"partsdesk/internal/dto"
	"partsdesk/internal/model"
	"partsdesk/internal/repository"
	"partsdesk/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const lookupCacheTTL = 4 * time.Hour

// PartService manages the spare-parts catalog: CRUD, the cached GSM price
// lookup used by the billing form, and the low-stock alert trigger.
type PartService interface {
	Create(ctx context.Context, req dto.CreatePartRequest) (*dto.PartResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PartResponse, error)
	List(ctx context.Context) ([]dto.PartResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePartRequest) (*dto.PartResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Lookup(ctx context.Context, gsm string) (*dto.PartLookupResponse, error)
}

type partService struct {
	repo       repository.SparePartRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
}

// NewPartService builds a PartService. rdb and dispatcher may be nil in unit
// tests — caching and alerting degrade to no-ops.
func NewPartService(repo repository.SparePartRepository, rdb *redis.Client, dispatcher *worker.Dispatcher) PartService {
	return &partService{repo: repo, rdb: rdb, dispatcher: dispatcher}
}

func (s *partService) Create(ctx context.Context, req dto.CreatePartRequest) (*dto.PartResponse, error) {
	unit := req.Unit
	if unit == "" {
		unit = "piece"
	}
	part := &model.SparePart{
		GSMNumber:     req.GSMNumber,
		Category:      req.Category,
		Manufacturer:  req.Manufacturer,
		Price:         req.Price,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		MinimumStock:  req.MinimumStock,
		Unit:          unit,
		Location:      req.Location,
	}
	if err := s.repo.Create(ctx, part); err != nil {
		return nil, err
	}
	s.afterMutation(ctx, part)
	return toPartResponse(part), nil
}

func (s *partService) Get(ctx context.Context, id uuid.UUID) (*dto.PartResponse, error) {
	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

func (s *partService) List(ctx context.Context) ([]dto.PartResponse, error) {
	parts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PartResponse, len(parts))
	for i := range parts {
		resp[i] = *toPartResponse(&parts[i])
	}
	return resp, nil
}

func (s *partService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Category != nil {
		part.Category = *req.Category
	}
	if req.Manufacturer != nil {
		part.Manufacturer = req.Manufacturer
	}
	if req.Price != nil {
		part.Price = *req.Price
	}
	if req.CostPrice != nil {
		part.CostPrice = req.CostPrice
	}
	if req.StockQuantity != nil {
		part.StockQuantity = *req.StockQuantity
	}
	if req.MinimumStock != nil {
		part.MinimumStock = *req.MinimumStock
	}
	if req.Unit != nil {
		part.Unit = *req.Unit
	}
	if req.Location != nil {
		part.Location = req.Location
	}
	if err := s.repo.Update(ctx, part); err != nil {
		return nil, err
	}
	s.afterMutation(ctx, part)
	return toPartResponse(part), nil
}

func (s *partService) Delete(ctx context.Context, id uuid.UUID) error {
	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLookup(ctx, part.GSMNumber)
	return nil
}

// Lookup serves the billing form's price autofill, cached in Redis by GSM.
func (s *partService) Lookup(ctx context.Context, gsm string) (*dto.PartLookupResponse, error) {
	cacheKey := "gsm:" + gsm

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PartLookupResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	part, err := s.repo.FindByGSM(ctx, gsm)
	if err != nil {
		return nil, err
	}
	resp := &dto.PartLookupResponse{
		GSMNumber:     part.GSMNumber,
		Category:      part.Category,
		Price:         part.Price,
		StockQuantity: part.StockQuantity,
		Unit:          part.Unit,
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, lookupCacheTTL).Err()
		}
	}
	return resp, nil
}

// afterMutation invalidates the lookup cache and enqueues a reorder alert
// when the part sits below its threshold. Neither failure reaches the caller.
func (s *partService) afterMutation(ctx context.Context, part *model.SparePart) {
	s.invalidateLookup(ctx, part.GSMNumber)

	if !part.LowStock() {
		return
	}
	err := s.dispatcher.EnqueueLowStockAlert(ctx, worker.LowStockAlertPayload{
		GSMNumber:     part.GSMNumber,
		Category:      part.Category,
		StockQuantity: part.StockQuantity,
		MinimumStock:  part.MinimumStock,
	})
	if err != nil {
		log.Error().Err(err).Str("gsm", part.GSMNumber).Msg("failed to enqueue low-stock alert")
	}
}

func (s *partService) invalidateLookup(ctx context.Context, gsm string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, "gsm:"+gsm).Err(); err != nil {
		log.Warn().Err(err).Str("gsm", gsm).Msg("failed to invalidate lookup cache")
	}
}

func toPartResponse(p *model.SparePart) *dto.PartResponse {
	return &dto.PartResponse{
		ID:            p.ID.String(),
		GSMNumber:     p.GSMNumber,
		Category:      p.Category,
		Manufacturer:  p.Manufacturer,
		Price:         p.Price,
		CostPrice:     p.Cost(),
		StockQuantity: p.StockQuantity,
		MinimumStock:  p.MinimumStock,
		Unit:          p.Unit,
		Location:      p.Location,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
