package vendors

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, vendor *Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Vendor, error)
	GetAll(ctx context.Context, query VendorListQuery) ([]Vendor, int64, error)
	Search(ctx context.Context, term string, query VendorListQuery) ([]Vendor, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Vendor, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Stats(ctx context.Context, id uuid.UUID) (*VendorStats, error)
	WithEvents(ctx context.Context, id uuid.UUID) (*VendorWithEvents, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, vendor *Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Vendor, error) {
	var vendor Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) GetAll(ctx context.Context, query VendorListQuery) ([]Vendor, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Vendor{}), query)
}

func (r *repository) Search(ctx context.Context, term string, query VendorListQuery) ([]Vendor, int64, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	base := r.db.WithContext(ctx).Model(&Vendor{}).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company_name) LIKE ?", pattern, pattern, pattern)
	return r.list(ctx, base, query)
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Vendor, error) {
	var vendor Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&vendor).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Vendor{}).
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

func (r *repository) Stats(ctx context.Context, id uuid.UUID) (*VendorStats, error) {
	stats := &VendorStats{}

	var eventAgg struct {
		Total    int64
		Active   int64
		Capacity int64
	}
	err := r.db.WithContext(ctx).
		Table("events").
		Select(`COUNT(*) as total,
			COUNT(*) FILTER (WHERE status = 'active') as active,
			COALESCE(SUM(capacity), 0) as capacity`).
		Where("vendor_id = ?", id).
		Scan(&eventAgg).Error
	if err != nil {
		return nil, err
	}
	stats.TotalEvents = eventAgg.Total
	stats.ActiveEvents = eventAgg.Active
	stats.TotalCapacity = eventAgg.Capacity

	err = r.db.WithContext(ctx).
		Table("tickets").
		Joins("JOIN events ON events.id = tickets.event_id").
		Where("events.vendor_id = ? AND tickets.status <> ?", id, "cancelled").
		Count(&stats.TicketsSold).Error
	if err != nil {
		return nil, err
	}

	var revenue struct {
		Total float64
	}
	err = r.db.WithContext(ctx).
		Table("orders").
		Select("COALESCE(SUM(orders.total_amount), 0) as total").
		Joins("JOIN events ON events.id = orders.event_id").
		Where("events.vendor_id = ? AND orders.status = ?", id, "confirmed").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue.Total

	return stats, nil
}

func (r *repository) WithEvents(ctx context.Context, id uuid.UUID) (*VendorWithEvents, error) {
	vendor, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	events := []VendorEventSummary{}
	err = r.db.WithContext(ctx).
		Table("events").
		Select("id as event_id, title, category, event_date, status, capacity").
		Where("vendor_id = ?", id).
		Order("event_date ASC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}

	return &VendorWithEvents{Vendor: *vendor, Events: events}, nil
}

func (r *repository) list(ctx context.Context, base *gorm.DB, query VendorListQuery) ([]Vendor, int64, error) {
	query.Normalize()

	if query.Status != "" {
		base = base.Where("status = ?", query.Status)
	}
	if query.BusinessType != "" {
		base = base.Where("business_type = ?", query.BusinessType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	vendors := []Vendor{}
	err := base.
		Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.Limit).
		Find(&vendors).Error
	if err != nil {
		return nil, 0, err
	}
	return vendors, total, nil
}
