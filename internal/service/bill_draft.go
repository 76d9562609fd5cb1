package service

import (
	"partsdesk/internal/dto"
	"partsdesk/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftItem is one editable bill line held in memory during an edit session.
type DraftItem struct {
	GSMNumber string
	Quantity  int
	Price     decimal.Decimal
	// Total tracks Quantity × Price and is refreshed on every line edit.
	Total decimal.Decimal
}

// BillDraft models the bill editor's in-memory buffer. Quantity and price
// edits recompute that line's total immediately; the header total is only
// recomputed when SaveTotal is called, mirroring the save transition.
type BillDraft struct {
	Items []DraftItem
}

// NewBillDraft builds a draft from submitted items, recomputing every line
// total rather than trusting client-sent values.
func NewBillDraft(items []dto.BillItemInput) *BillDraft {
	d := &BillDraft{Items: make([]DraftItem, len(items))}
	for i, in := range items {
		d.Items[i] = DraftItem{
			GSMNumber: in.GSMNumber,
			Quantity:  in.Quantity,
			Price:     in.Price,
			Total:     lineTotal(in.Quantity, in.Price),
		}
	}
	return d
}

// SetQuantity updates one line's quantity and its total. Other lines and any
// previously computed header total are untouched.
func (d *BillDraft) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(d.Items) {
		return
	}
	d.Items[index].Quantity = quantity
	d.Items[index].Total = lineTotal(quantity, d.Items[index].Price)
}

// SetPrice updates one line's unit price and its total.
func (d *BillDraft) SetPrice(index int, price decimal.Decimal) {
	if index < 0 || index >= len(d.Items) {
		return
	}
	d.Items[index].Price = price
	d.Items[index].Total = lineTotal(d.Items[index].Quantity, price)
}

// AddItem appends a zero-valued line: empty GSM, quantity 1, price 0.
func (d *BillDraft) AddItem() {
	d.Items = append(d.Items, DraftItem{Quantity: 1, Price: decimal.Zero, Total: decimal.Zero})
}

// RemoveItem deletes a line by position, preserving the index correspondence
// of the remaining lines.
func (d *BillDraft) RemoveItem(index int) {
	if index < 0 || index >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
}

// SaveTotal recomputes the header total as the sum of quantity × price over
// all current lines. Called exactly once per save transition.
func (d *BillDraft) SaveTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range d.Items {
		total = total.Add(lineTotal(d.Items[i].Quantity, d.Items[i].Price))
	}
	return total
}

// Rows materializes the draft as persistable item rows for the given bill.
func (d *BillDraft) Rows(billID uuid.UUID) []model.BillItem {
	rows := make([]model.BillItem, len(d.Items))
	for i := range d.Items {
		rows[i] = model.BillItem{
			BillID:    billID,
			GSMNumber: d.Items[i].GSMNumber,
			Quantity:  d.Items[i].Quantity,
			Price:     d.Items[i].Price,
			Total:     d.Items[i].Total,
		}
	}
	return rows
}

func lineTotal(quantity int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
