package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetAll(ctx context.Context, query PaymentListQuery) ([]Payment, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Stats(ctx context.Context) (*PaymentStats, error)
	VendorEarnings(ctx context.Context, vendorID uuid.UUID) (*VendorEarnings, error)
	VendorStats(ctx context.Context, vendorID uuid.UUID) (*PaymentStats, error)
	GetUserPayments(ctx context.Context, userID uuid.UUID, query PaymentListQuery) ([]Payment, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	var payment Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) GetAll(ctx context.Context, query PaymentListQuery) ([]Payment, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Payment{}), query)
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Stats(ctx context.Context) (*PaymentStats, error) {
	return r.statsWhere(ctx, "", nil)
}

func (r *repository) VendorEarnings(ctx context.Context, vendorID uuid.UUID) (*VendorEarnings, error) {
	var row struct {
		Total float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("COALESCE(SUM(payments.amount), 0) as total, COUNT(*) as count").
		Joins("JOIN events ON events.id = payments.event_id").
		Where("events.vendor_id = ? AND payments.status = ?", vendorID, StatusCompleted).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &VendorEarnings{
		VendorID:      vendorID,
		TotalEarnings: row.Total,
		PaymentCount:  row.Count,
	}, nil
}

func (r *repository) VendorStats(ctx context.Context, vendorID uuid.UUID) (*PaymentStats, error) {
	return r.statsWhere(ctx, "events.vendor_id = ?", vendorID)
}

func (r *repository) GetUserPayments(ctx context.Context, userID uuid.UUID, query PaymentListQuery) ([]Payment, int64, error) {
	base := r.db.WithContext(ctx).Model(&Payment{}).Where("user_id = ?", userID)
	return r.list(ctx, base, query)
}

func (r *repository) list(ctx context.Context, base *gorm.DB, query PaymentListQuery) ([]Payment, int64, error) {
	query.Normalize()

	if query.Status != "" {
		base = base.Where("status = ?", query.Status)
	}
	if query.Method != "" {
		base = base.Where("payment_method = ?", query.Method)
	}
	if from, err := time.Parse("2006-01-02", query.From); err == nil {
		base = base.Where("created_at >= ?", from)
	}
	if to, err := time.Parse("2006-01-02", query.To); err == nil {
		base = base.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	payments := []Payment{}
	err := base.
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// statsWhere aggregates counts per status and amount totals, optionally
// scoped by a join condition on the payment's event.
func (r *repository) statsWhere(ctx context.Context, cond string, arg interface{}) (*PaymentStats, error) {
	stats := &PaymentStats{ByStatus: make(map[string]int64)}

	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Table("payments")
		if cond != "" {
			q = q.Joins("JOIN events ON events.id = payments.event_id").Where(cond, arg)
		}
		return q
	}

	var rows []struct {
		Status string
		Count  int64
		Total  float64
	}
	err := scoped().
		Select("payments.status, COUNT(*) as count, COALESCE(SUM(payments.amount), 0) as total").
		Group("payments.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.TotalPayments += row.Count
		switch Status(row.Status) {
		case StatusCompleted:
			stats.CompletedTotal = row.Total
		case StatusPending:
			stats.PendingTotal = row.Total
		}
	}
	return stats, nil
}
