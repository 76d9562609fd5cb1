package repository

import (
	"context"

	"partsdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SparePartRepository defines the data access contract for inventory rows.
// Services depend on this interface, not on the concrete GORM implementation,
// so unit tests can swap in in-memory stubs.
type SparePartRepository interface {
	Create(ctx context.Context, p *model.SparePart) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error)
	FindByGSM(ctx context.Context, gsm string) (*model.SparePart, error)
	// List returns the full current snapshot, newest first. Every aggregate
	// view derives from one List call so its figures stay mutually consistent.
	List(ctx context.Context) ([]model.SparePart, error)
	Update(ctx context.Context, p *model.SparePart) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sparePartRepo struct{ db *gorm.DB }

func NewSparePartRepository(db *gorm.DB) SparePartRepository { return &sparePartRepo{db: db} }

func (r *sparePartRepo) Create(ctx context.Context, p *model.SparePart) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *sparePartRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error) {
	var p model.SparePart
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *sparePartRepo) FindByGSM(ctx context.Context, gsm string) (*model.SparePart, error) {
	var p model.SparePart
	err := r.db.WithContext(ctx).Where("gsm_number = ?", gsm).First(&p).Error
	return &p, err
}

func (r *sparePartRepo) List(ctx context.Context) ([]model.SparePart, error) {
	var parts []model.SparePart
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&parts).Error
	return parts, err
}

func (r *sparePartRepo) Update(ctx context.Context, p *model.SparePart) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *sparePartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SparePart{}, "id = ?", id).Error
}
