package repository

import (
	"context"

	"partsdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillRepository defines the data access contract for bills and their items.
type BillRepository interface {
	Create(ctx context.Context, b *model.Bill) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	// List returns bill headers only, newest first.
	List(ctx context.Context) ([]model.Bill, error)
	// SaveWithItems persists the header fields and replaces the entire item
	// set in one transaction, so a failure can never leave the stored items
	// empty while the header carries the new total.
	SaveWithItems(ctx context.Context, b *model.Bill, items []model.BillItem) error
	// Delete removes the bill's items and then the bill row, transactionally.
	Delete(ctx context.Context, id uuid.UUID) error
}

type billRepo struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) BillRepository { return &billRepo{db: db} }

func (r *billRepo) Create(ctx context.Context, b *model.Bill) error {
	// Items are created through the association in the same insert batch.
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *billRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).Preload("Items").First(&b, "id = ?", id).Error
	return &b, err
}

func (r *billRepo) List(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&bills).Error
	return bills, err
}

func (r *billRepo) SaveWithItems(ctx context.Context, b *model.Bill, items []model.BillItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"customer_name": b.CustomerName,
			"payment_mode":  b.PaymentMode,
			"status":        b.Status,
			"total_amount":  b.TotalAmount,
		}
		if err := tx.Model(&model.Bill{}).Where("id = ?", b.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("bill_id = ?", b.ID).Delete(&model.BillItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *billRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&model.BillItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Bill{}, "id = ?", id).Error
	})
}
