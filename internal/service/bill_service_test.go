package service

import (
	"context"
	"errors"
	"testing"

	"partsdesk/internal/dto"
	"partsdesk/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory BillRepository stub ────────────────────────────────────────────

type stubBillRepo struct {
	bills map[uuid.UUID]*model.Bill
	items map[uuid.UUID][]model.BillItem
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{
		bills: make(map[uuid.UUID]*model.Bill),
		items: make(map[uuid.UUID][]model.BillItem),
	}
}

func (r *stubBillRepo) Create(_ context.Context, b *model.Bill) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	items := b.Items
	for i := range items {
		items[i].ID = uuid.New()
		items[i].BillID = b.ID
	}
	header := *b
	header.Items = nil
	r.bills[b.ID] = &header
	r.items[b.ID] = items
	return nil
}

func (r *stubBillRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	out := *b
	out.Items = append([]model.BillItem(nil), r.items[id]...)
	return &out, nil
}

func (r *stubBillRepo) List(_ context.Context) ([]model.Bill, error) {
	bills := make([]model.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		bills = append(bills, *b)
	}
	return bills, nil
}

func (r *stubBillRepo) SaveWithItems(_ context.Context, b *model.Bill, items []model.BillItem) error {
	stored, ok := r.bills[b.ID]
	if !ok {
		return errors.New("record not found")
	}
	stored.CustomerName = b.CustomerName
	stored.PaymentMode = b.PaymentMode
	stored.Status = b.Status
	stored.TotalAmount = b.TotalAmount
	for i := range items {
		items[i].ID = uuid.New()
	}
	r.items[b.ID] = append([]model.BillItem(nil), items...)
	return nil
}

func (r *stubBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bills[id]; !ok {
		return errors.New("record not found")
	}
	delete(r.items, id)
	delete(r.bills, id)
	return nil
}

// ── Draft editing semantics ──────────────────────────────────────────────────

func draftItems() []dto.BillItemInput {
	return []dto.BillItemInput{
		{GSMNumber: "GSM-1", Quantity: 2, Price: dec(100)},
		{GSMNumber: "GSM-2", Quantity: 1, Price: dec(50)},
	}
}

func TestDraftLineTotalsComputedOnBuild(t *testing.T) {
	d := NewBillDraft(draftItems())

	require.Len(t, d.Items, 2)
	assert.True(t, d.Items[0].Total.Equal(dec(200)))
	assert.True(t, d.Items[1].Total.Equal(dec(50)))
	assert.True(t, d.SaveTotal().Equal(dec(250)))
}

func TestDraftQuantityEditRecomputesOnlyThatLine(t *testing.T) {
	d := NewBillDraft(draftItems())
	headerBeforeEdit := d.SaveTotal()

	d.SetQuantity(0, 3)

	// The edited line updates instantly; the other line is untouched.
	assert.True(t, d.Items[0].Total.Equal(dec(300)))
	assert.True(t, d.Items[1].Total.Equal(dec(50)))
	// The header figure computed before the edit stays at 250 — a new header
	// total only exists once the save transition recomputes it.
	assert.True(t, headerBeforeEdit.Equal(dec(250)))
	assert.True(t, d.SaveTotal().Equal(dec(350)))
}

func TestDraftPriceEditRecomputesLine(t *testing.T) {
	d := NewBillDraft(draftItems())

	d.SetPrice(1, decimal.NewFromFloat(75.50))

	assert.True(t, d.Items[1].Total.Equal(decimal.NewFromFloat(75.50)))
	assert.True(t, d.SaveTotal().Equal(decimal.NewFromFloat(275.50)))
}

func TestDraftAddAndRemoveByPosition(t *testing.T) {
	d := NewBillDraft(draftItems())

	d.AddItem()
	require.Len(t, d.Items, 3)
	assert.Equal(t, "", d.Items[2].GSMNumber)
	assert.Equal(t, 1, d.Items[2].Quantity)
	assert.True(t, d.Items[2].Total.IsZero())

	d.RemoveItem(0)
	require.Len(t, d.Items, 2)
	// Index correspondence shifts down: the former second line is now first.
	assert.Equal(t, "GSM-2", d.Items[0].GSMNumber)
	assert.True(t, d.SaveTotal().Equal(dec(50)))
}

func TestDraftOutOfRangeEditsIgnored(t *testing.T) {
	d := NewBillDraft(draftItems())

	d.SetQuantity(5, 9)
	d.SetPrice(-1, dec(1))
	d.RemoveItem(7)

	require.Len(t, d.Items, 2)
	assert.True(t, d.SaveTotal().Equal(dec(250)))
}

// ── Service save path ────────────────────────────────────────────────────────

func seedBill(t *testing.T, repo *stubBillRepo) uuid.UUID {
	t.Helper()
	svc := NewBillService(repo)
	resp, err := svc.Create(context.Background(), dto.CreateBillRequest{
		BillNumber:   "B-0001",
		CustomerName: "Sharma Motors",
		Items:        draftItems(),
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

func TestBillCreateRecomputesTotals(t *testing.T) {
	repo := newStubBillRepo()
	id := seedBill(t, repo)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(dec(250)))
	assert.Equal(t, model.BillStatusPaid, stored.Status, "status defaults to Paid")
	require.Len(t, stored.Items, 2)
	assert.True(t, stored.Items[0].Total.Equal(dec(200)))
}

func TestBillUpdateReplacesItemsAndTotal(t *testing.T) {
	repo := newStubBillRepo()
	id := seedBill(t, repo)
	svc := NewBillService(repo)

	resp, err := svc.Update(context.Background(), id, dto.UpdateBillRequest{
		CustomerName: "Sharma Motors",
		Status:       model.BillStatusUnpaid,
		Items: []dto.BillItemInput{
			{GSMNumber: "GSM-1", Quantity: 3, Price: dec(100)},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(dec(300)))

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(dec(300)))
	assert.Equal(t, model.BillStatusUnpaid, stored.Status)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "GSM-1", stored.Items[0].GSMNumber)
}

func TestBillUpdateIdempotent(t *testing.T) {
	repo := newStubBillRepo()
	id := seedBill(t, repo)
	svc := NewBillService(repo)

	req := dto.UpdateBillRequest{CustomerName: "Sharma Motors", Items: draftItems()}

	first, err := svc.Update(context.Background(), id, req)
	require.NoError(t, err)
	second, err := svc.Update(context.Background(), id, req)
	require.NoError(t, err)

	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	require.Len(t, second.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].GSMNumber, second.Items[i].GSMNumber)
		assert.Equal(t, first.Items[i].Quantity, second.Items[i].Quantity)
		assert.True(t, first.Items[i].Total.Equal(second.Items[i].Total))
	}
}

func TestBillDeleteRemovesItems(t *testing.T) {
	repo := newStubBillRepo()
	id := seedBill(t, repo)
	svc := NewBillService(repo)

	require.NoError(t, svc.Delete(context.Background(), id))

	_, err := repo.FindByID(context.Background(), id)
	assert.Error(t, err)
	assert.Empty(t, repo.items[id])
}

func TestBillUpdateMissingBill(t *testing.T) {
	svc := NewBillService(newStubBillRepo())

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateBillRequest{
		CustomerName: "Nobody",
	})
	assert.Error(t, err)
}
