package withdrawals

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, withdrawal *Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*Withdrawal, error)
	GetAll(ctx context.Context, query WithdrawalListQuery) ([]Withdrawal, int64, error)
	GetByVendor(ctx context.Context, vendorID uuid.UUID, query WithdrawalListQuery) ([]Withdrawal, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	VendorStats(ctx context.Context, vendorID uuid.UUID) (*VendorWithdrawalStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, withdrawal *Withdrawal) error {
	return r.db.WithContext(ctx).Create(withdrawal).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Withdrawal, error) {
	var withdrawal Withdrawal
	if err := r.db.WithContext(ctx).First(&withdrawal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *repository) GetAll(ctx context.Context, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Withdrawal{}), query)
}

func (r *repository) GetByVendor(ctx context.Context, vendorID uuid.UUID, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	base := r.db.WithContext(ctx).Model(&Withdrawal{}).Where("vendor_id = ?", vendorID)
	return r.list(ctx, base, query)
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&Withdrawal{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) VendorStats(ctx context.Context, vendorID uuid.UUID) (*VendorWithdrawalStats, error) {
	stats := &VendorWithdrawalStats{ByStatus: make(map[string]int64)}

	var rows []struct {
		Status string
		Count  int64
		Total  float64
	}
	err := r.db.WithContext(ctx).
		Model(&Withdrawal{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("vendor_id = ?", vendorID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.TotalRequested += row.Total
		switch Status(row.Status) {
		case StatusCompleted:
			stats.TotalPaidOut = row.Total
		case StatusPending:
			stats.PendingAmount = row.Total
		}
	}
	return stats, nil
}

func (r *repository) list(ctx context.Context, base *gorm.DB, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	query.Normalize()

	if query.Status != "" {
		base = base.Where("status = ?", query.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	withdrawals := []Withdrawal{}
	err := base.
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&withdrawals).Error
	if err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}
