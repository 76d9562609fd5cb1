package service

import (
	"context"
	"time"

	"partsdesk/internal/dto"
	"partsdesk/internal/model"
	"partsdesk/internal/repository"

	"github.com/google/uuid"
)

// BillService manages customer bills. Totals are never trusted from the
// request or from stored state: every save rebuilds line totals and the
// header total from quantity × price.
type BillService interface {
	Create(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.BillResponse, error)
	List(ctx context.Context) ([]dto.BillResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBillRequest) (*dto.BillResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type billService struct {
	repo repository.BillRepository
}

func NewBillService(repo repository.BillRepository) BillService {
	return &billService{repo: repo}
}

func (s *billService) Create(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error) {
	draft := NewBillDraft(req.Items)

	status := req.Status
	if status == "" {
		status = model.BillStatusPaid
	}
	bill := &model.Bill{
		BillNumber:   req.BillNumber,
		CustomerName: req.CustomerName,
		TotalAmount:  draft.SaveTotal(),
		PaymentMode:  req.PaymentMode,
		Status:       status,
		Items:        draft.Rows(uuid.Nil),
	}
	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill, true), nil
}

func (s *billService) Get(ctx context.Context, id uuid.UUID) (*dto.BillResponse, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill, true), nil
}

func (s *billService) List(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BillResponse, len(bills))
	for i := range bills {
		resp[i] = *toBillResponse(&bills[i], false)
	}
	return resp, nil
}

// Update is the save transition of the bill editor: recompute the header
// total from the submitted lines, persist the scalar fields, and replace the
// entire item set. Repeating the call with unchanged input persists the same
// total and the same item contents.
func (s *billService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBillRequest) (*dto.BillResponse, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := NewBillDraft(req.Items)

	bill.CustomerName = req.CustomerName
	bill.PaymentMode = req.PaymentMode
	if req.Status != "" {
		bill.Status = req.Status
	}
	bill.TotalAmount = draft.SaveTotal()

	items := draft.Rows(bill.ID)
	if err := s.repo.SaveWithItems(ctx, bill, items); err != nil {
		return nil, err
	}
	bill.Items = items
	return toBillResponse(bill, true), nil
}

func (s *billService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func toBillResponse(b *model.Bill, withItems bool) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:           b.ID.String(),
		BillNumber:   b.BillNumber,
		CustomerName: b.CustomerName,
		TotalAmount:  b.TotalAmount,
		PaymentMode:  b.PaymentMode,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
	if withItems {
		resp.Items = make([]dto.BillItemResponse, len(b.Items))
		for i := range b.Items {
			item := &b.Items[i]
			resp.Items[i] = dto.BillItemResponse{
				ID:        item.ID.String(),
				GSMNumber: item.GSMNumber,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Total:     item.Total,
			}
		}
	}
	return resp
}
